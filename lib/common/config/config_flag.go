package config

import (
	"flag"
)

// Override holds command line values that take precedence over the configuration file.
type Override struct {
	Lexicon       *string
	LexiconFormat *string
	Output        *string
	PrefixLength  *int
	Alpha         *int
	Delta         *float64
	Lenient       *bool
}

func RegisterFlags(set *flag.FlagSet) *Override {
	return &Override{
		Lexicon:       set.String("lexicon", "", "lexicon file, overrides configuration"),
		LexiconFormat: set.String("format", "", "lexicon format (txt, csv, jsonl)"),
		Output:        set.String("output", "", "stem table output file"),
		PrefixLength:  set.Int("l", -1, "prefix length, 0 for average word length"),
		Alpha:         set.Int("alpha", 0, "minimum suffix pair frequency"),
		Delta:         set.Float64("delta", 0, "cohesion threshold in (0, 1]"),
		Lenient:       set.Bool("lenient", false, "produce singletons instead of failing when no similarity is found"),
	}
}

// Apply copies every flag that was given onto the configuration.
func (r *Override) Apply(config *Config) *Config {
	if *r.Lexicon != "" {
		config.Lexicon = r.Lexicon
	}
	if *r.LexiconFormat != "" {
		config.LexiconFormat = r.LexiconFormat
	}
	if *r.Output != "" {
		config.Output = r.Output
	}
	if *r.PrefixLength >= 0 {
		config.Grass.PrefixLength = r.PrefixLength
	}
	if *r.Alpha > 0 {
		config.Grass.Alpha = r.Alpha
	}
	if *r.Delta > 0 {
		config.Grass.Delta = r.Delta
	}
	if *r.Lenient {
		config.Grass.Strict = ptr(false)
	}
	return config
}
