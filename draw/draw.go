package draw

// Object is a drawing-resource handle (font, pen, brush, ...). Zero
// means no object.
type Object uintptr

// Context is a device-context handle. Zero means no context.
type Context uintptr

// Kind tags an owned object for diagnostics. It does not affect the
// release action.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindFont
	KindPen
	KindBrush
)

func (k Kind) String() string {
	switch k {
	case KindFont:
		return "font"
	case KindPen:
		return "pen"
	case KindBrush:
		return "brush"
	default:
		return "object"
	}
}

// System is the drawing subsystem's call shape. Implementations must
// accept the zero Object and zero Context as no-ops in the delete
// primitives.
type System interface {
	// DeleteObject releases a drawing object.
	DeleteObject(Object)

	// DeleteContext releases a device context.
	DeleteContext(Context)

	// Select makes obj current in ctx and returns the previously
	// selected object.
	Select(ctx Context, obj Object) Object
}
