package globalrng

// ResetGlobal drops the installed generator so facade tests can start from
// an uninitialized state. Not part of the production contract.
func ResetGlobal() {
	global = newDefaultBackend()
}
