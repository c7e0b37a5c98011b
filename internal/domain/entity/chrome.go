package entity

// ChromeElement identifies a single piece of system chrome around the
// playback surface.
type ChromeElement string

const (
	ChromeTitleBar  ChromeElement = "title_bar"
	ChromeStatusBar ChromeElement = "status_bar"
	ChromeCursor    ChromeElement = "cursor"
)

// ChromeVisibility is the set of chrome elements that should be visible
// in a given playback mode. Elements absent from the set are hidden.
type ChromeVisibility map[ChromeElement]bool

// AllChromeVisible returns the visibility set with every chrome element
// shown. This is the inline-mode default.
func AllChromeVisible() ChromeVisibility {
	return ChromeVisibility{
		ChromeTitleBar:  true,
		ChromeStatusBar: true,
		ChromeCursor:    true,
	}
}

// NoChromeVisible returns the visibility set with every chrome element
// hidden. This is the fullscreen-mode default.
func NoChromeVisible() ChromeVisibility {
	return ChromeVisibility{}
}

// Visible reports whether the given element is visible in this set.
func (c ChromeVisibility) Visible(el ChromeElement) bool {
	return c[el]
}

// Clone returns an independent copy so callers cannot mutate a
// visibility set after handing it to an immutable config.
func (c ChromeVisibility) Clone() ChromeVisibility {
	if c == nil {
		return nil
	}
	out := make(ChromeVisibility, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
