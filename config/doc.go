/*
Package config loads the shell's CUE configuration.

A configuration file is a CUE document unified with an embedded schema
(schema.cue). The schema supplies every default, so an empty file, or no
file at all, yields the stock shell: a "C:" drive prompt, the boot banner,
light grey on black, info logging and the built-in seed set.

# Loading

	fsys := hostfs.NewLocal("/")
	loader, err := config.NewLoader(fsys)
	if err != nil {
		return err
	}

	cfg, err := loader.Load(ctx, "home/me/.dosh.cue")
	if err != nil {
		// CONFIG_LOAD_FAILED, CONFIG_VALIDATION_FAILED or CONFIG_DECODE_FAILED,
		// all classified FATAL
		return err
	}

# Example file

	prompt: drive: "A:"
	colors: {
		foreground: "white"
		background: "blue"
	}
	seed: {
		directories: [#"\GAMES"#]
		files: [{path: #"\GAMES\README.TXT"#, content: "have fun\r\n"}]
	}

# Dumping

EncodeYAML renders an effective configuration, defaults included, for
dosh --print-config.
*/
package config
