// Package handle owns raw OS handles.
//
// The handle space has two distinct empty-like sentinels: Null, a valid
// encoding that names no object, and Invalid, the platform's designated
// failure value. Closing Invalid is a well-known misuse of the underlying
// platform, so the owner treats it as a guarded no-op; Null is closed
// like any other handle, matching the platform contract.
package handle
