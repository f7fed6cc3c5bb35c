package mpn

import "sync"

var defaultEngine = sync.OnceValue(func() *Engine {
	return MustNewEngine()
})

// Default returns the process-wide engine built from the built-in
// definitions. The first call builds it; later calls only read it.
func Default() *Engine {
	return defaultEngine()
}

// Classify classifies an MPN with the default engine
func Classify(mpn string) ComponentType {
	return Default().Classify(mpn)
}

// ClassifyWithHint classifies an MPN under a manufacturer hint with the
// default engine
func ClassifyWithHint(mpn, manufacturerHint string) ComponentType {
	return Default().ClassifyWithHint(mpn, manufacturerHint)
}

// ExtractAttributes extracts attributes with the default engine
func ExtractAttributes(mpn, manufacturerHint string) ExtractedAttributes {
	return Default().ExtractAttributes(mpn, manufacturerHint)
}

// AreInterchangeable compares two MPNs with the default engine
func AreInterchangeable(mpnA, mpnB string, componentType ComponentType) CompatibilityVerdict {
	return Default().AreInterchangeable(mpnA, mpnB, componentType)
}
