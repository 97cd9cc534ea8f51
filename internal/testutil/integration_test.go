package testutil

import (
	"os/exec"
	"path/filepath"
	"testing"
)

func TestBinaryCheckMatchesGolden(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	bin := BuildBinary(t)
	home := t.TempDir()
	cmd := exec.Command(bin, "check", "--config", "testdata/menu.yaml")
	cmd.Dir = RepoRoot(t)
	cmd.Env = []string{"HOME=" + home, "BOOTMENU_LOG_FILE=" + filepath.Join(home, "tmp", "bootmenu.log")}
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	AssertGolden(t, "check.golden", string(out))
}
