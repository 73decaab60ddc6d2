package desugar

import "fmt"

// Spellings is the fixed identifier vocabulary of the loop expansion.
// The front end emits these names verbatim, so a recognizer configured
// with different spellings matches nothing.
type Spellings struct {
	// IntoIter is the "make iterator from a range" entry point path.
	IntoIter string `yaml:"into_iter"`

	// Advance is the "advance iterator" entry point path.
	Advance string `yaml:"advance"`

	// Range is the struct literal name of a bounded range.
	Range string `yaml:"range"`

	// Some and None are the variant paths of the advance result.
	Some string `yaml:"some"`
	None string `yaml:"none"`

	// IterVar is the compiler-chosen loop-control binding name.
	IterVar string `yaml:"iter_var"`

	// NextVar is the compiler-chosen per-step scratch binding name.
	NextVar string `yaml:"next_var"`
}

// DefaultSpellings returns the vocabulary the reference front end uses.
func DefaultSpellings() Spellings {
	return Spellings{
		IntoIter: "IntoIterator::into_iter",
		Advance:  "Iterator::next",
		Range:    "Range",
		Some:     "Some",
		None:     "None",
		IterVar:  "iter",
		NextVar:  "__next",
	}
}

// Validate reports the first empty spelling, if any. A partially
// configured vocabulary silently matches nothing, so the driver rejects
// it up front.
func (s Spellings) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"into_iter", s.IntoIter},
		{"advance", s.Advance},
		{"range", s.Range},
		{"some", s.Some},
		{"none", s.None},
		{"iter_var", s.IterVar},
		{"next_var", s.NextVar},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("spelling %q must not be empty", f.name)
		}
	}

	return nil
}
