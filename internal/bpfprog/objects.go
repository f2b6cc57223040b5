package bpfprog

import "github.com/cilium/ebpf"

// LoadSikteObjects loads the embedded kernel object's programs and maps
// into the kernel and assigns them into obj, typically a *SikteObjects.
// Thin exported wrapper around the generated (unexported) loadSikteObjects
// so that callers outside this package — internal/loader — never touch
// the generated file directly.
func LoadSikteObjects(obj interface{}, opts *ebpf.CollectionOptions) error {
	return loadSikteObjects(obj, opts)
}
