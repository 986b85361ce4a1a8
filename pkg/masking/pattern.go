package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPattern is the source form of a pattern before compilation.
type builtinPattern struct {
	pattern     string
	replacement string
}

// builtinPatterns are the PII shapes that show up in chat text. Order
// matters: more specific patterns run first so the generic digit-run sweep
// does not eat a phone number's structure.
var builtinPatterns = []struct {
	name string
	builtinPattern
}{
	{"email", builtinPattern{
		pattern:     `[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`,
		replacement: "[邮箱已隐藏]",
	}},
	{"cn_mobile", builtinPattern{
		pattern:     `(?:\+?86[\s\-]?)?1[3-9]\d{9}`,
		replacement: "[手机号已隐藏]",
	}},
	{"cn_id_number", builtinPattern{
		pattern:     `\b\d{17}[\dXx]\b`,
		replacement: "[证件号已隐藏]",
	}},
	{"long_digit_run", builtinPattern{
		// QQ numbers, bank cards, verification codes: any 6+ digit run
		// that survived the specific patterns.
		pattern:     `\d{6,}`,
		replacement: "[数字串已隐藏]",
	}},
}

// compilePatterns compiles the built-in set. Invalid patterns are logged and
// skipped rather than failing startup.
func compilePatterns(logger *slog.Logger) []*CompiledPattern {
	out := make([]*CompiledPattern, 0, len(builtinPatterns))
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			logger.Error("failed to compile masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		out = append(out, &CompiledPattern{
			Name:        p.name,
			Regex:       compiled,
			Replacement: p.replacement,
		})
	}
	return out
}
