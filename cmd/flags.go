package cmd

import (
	"github.com/spf13/pflag"

	m "github.com/mouse-blink/compatfix/internal/model"
)

var _ pflag.Value = (*ruleFlag)(nil)

// ruleFlag is a repeatable pflag.Value holding a selection rule. Repeated
// values are merged; an unset flag leaves the configured rule alone.
type ruleFlag struct {
	rule m.Rule
	set  bool
}

func (f *ruleFlag) String() string {
	if !f.set {
		return ""
	}

	return f.rule.String()
}

func (f *ruleFlag) Set(value string) error {
	parsed := m.ParseRule(value)

	if f.set {
		parsed = f.rule.Merge(parsed)
	}

	f.rule = parsed
	f.set = true

	return nil
}

func (f *ruleFlag) Type() string {
	return "rule"
}

func (f *ruleFlag) apply(target *m.Rule) {
	if f.set {
		*target = f.rule
	}
}
