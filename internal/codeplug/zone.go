package codeplug

// Zone groups channels under a label on the radio. Members reference
// channels by their truncated display name, which must match the Channel
// Name column of the channel CSV exactly.
type Zone struct {
	Name    string
	Members []string
}

// memberNames collects the truncated display names of a channel slice.
func memberNames(channels []Channel) []string {
	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, ch.DisplayName())
	}
	return names
}
