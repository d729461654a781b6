// Package registry holds the named record schemas known to one application
// instance.
//
// The registry maps type names used in manifests (e.g. "TelescopeInfo") to
// their built record.Schema values and preserves registration order for
// deterministic listings. After manifest loading completes, the registry is
// validated so that every cross-type reference resolves, preventing a class
// of instantiation-time failures.
package registry
