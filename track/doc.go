// Package track provides an optional live-resource registry for leak
// diagnosis.
//
// Owners do not know about the registry; call sites that want
// diagnostics record acquisitions and releases explicitly:
//
//	reg := track.NewRegistry()
//	kind := track.KindOf("gdi.font")
//
//	h := reg.Acquired(kind, "menu font")
//	defer reg.Released(h)
//
// Observers receive every lifecycle event; TraceWriter is an observer
// that appends JSON-lines records for offline inspection with the
// scopedtrace tool. Close drains the registry and logs a warning when
// live entries remain, since anything still live at that point leaked.
package track
