package menu

// Default returns the built-in menu used when the config file cannot be used.
func Default() Config {
	return Config{
		Title:   DefaultTitle,
		Timeout: DefaultTimeout,
		Options: []Option{
			{Label: "Graphical session", Command: "sh $HOME/.config/bootmenu/session.sh"},
			{Label: "Root shell (fallback)", Command: "/bin/sh -l"},
			{Label: "Power off", Command: "poweroff"},
		},
	}
}
