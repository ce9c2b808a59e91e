package tui

// UI Text Constants
const (
	TextTitle       = "🎬 Face Recognition"
	TextDropZone    = "📤 Drag & drop an image here, or type its path, then press Enter"
	TextPlaceholder = "/path/to/photo.jpg"
	TextLoading     = "⏳ Recognizing %s..."
	TextNoSelection = "No file selected."
	TextOpening     = "Opening %s..."

	// Footer
	TextFooter = "Enter to upload | Esc or Ctrl+C to quit"
)
