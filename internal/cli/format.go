package cli

func status(overflowing bool) string {
	if overflowing {
		return "over"
	}
	return "ok"
}
