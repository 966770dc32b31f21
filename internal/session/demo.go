package session

// Sample pair loaded on startup when no share link or import is pending.
const (
	DemoLeft  = "function greet(name){\n  return 'Hello, ' + name + '!';\n}\n"
	DemoRight = "function greet(name){\n  // Use template literal and fallback\n  name = name ?? 'world';\n  return `Hello, ${name}!`;\n}\n"
)

// Demo returns a session preloaded with the sample pair as edited JavaScript.
func Demo() State {
	s := New()
	s.Buffers = [2]string{DemoLeft, DemoRight}
	s.Sides[Left] = Content{Kind: KindEdited, Original: DemoLeft}
	s.Sides[Right] = Content{Kind: KindEdited, Original: DemoRight}
	s.Language = "javascript"
	return s
}
