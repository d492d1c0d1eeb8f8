package escrowcfg

import "github.com/jessevdk/go-flags"

// ParseArgs parses args (typically os.Args[1:]) into a Config seeded with
// the protocol defaults, the same two-step "defaults then override" pattern
// lnd's own daemon config follows before going on to validate the result.
func ParseArgs(args []string) (*Config, error) {
	cfg := Default()

	parser := flags.NewParser(cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
