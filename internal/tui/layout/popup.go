package layout

// CalculatePopupWidth clamps the terminal width to the popup bounds.
func CalculatePopupWidth(terminalWidth int, cfg PopupConfig) int {
	width := terminalWidth
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}
	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	return width
}

// CalculateListHeight computes the number of visible list rows.
// Returns at least MinHeight.
func CalculateListHeight(terminalHeight int, cfg PopupConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected row visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
