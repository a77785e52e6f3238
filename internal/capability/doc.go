// Package capability provides the registry that holds every provider of a
// single capability and records which one callers get by default.
//
// # Core Concepts
//
// Entry: an identifier paired with an implementation and a default flag.
//
// Default: the implementation handed to callers that ask for "the"
// capability instead of naming a provider. At most one entry is flagged and
// the flag is set once.
//
// # Usage
//
//	reg := capability.NewRegistry[calculator.Calculator]()
//	if err := reg.Register("simpleCoreCalculatorService", simple); err != nil {
//	    return err
//	}
//	if err := reg.SetDefault("simpleCoreCalculatorService"); err != nil {
//	    return err
//	}
//	calc, err := reg.GetDefault()
//
// Errors wrap the package sentinels, so callers match them with errors.Is:
//
//	if errors.Is(err, capability.ErrNoDefaultSelected) {
//	    // report a configuration error
//	}
//
// Choosing the default is not this package's job; see package primary.
package capability
