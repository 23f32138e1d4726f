package review

import "strings"

// FirstName extracts a first name from a stored influencer name.
// Names arrive either as "Surname, First" or "First Surname"; for the comma
// form the first non-empty trimmed segment wins, preferring the one before
// the comma. An empty name yields "Unknown".
func FirstName(full string) string {
	full = strings.TrimSpace(full)
	if full == "" {
		return "Unknown"
	}

	if before, after, found := strings.Cut(full, ","); found {
		if name := strings.TrimSpace(before); name != "" {
			return name
		}
		if name := strings.TrimSpace(after); name != "" {
			return name
		}
		return "Unknown"
	}

	if name, _, found := strings.Cut(full, " "); found {
		return name
	}
	return full
}

// Suggested regenerates the suggested message for an item under the given
// moderation flag. The output is a pure function of (item, flag): switching
// the flag back and forth reproduces the original text.
func Suggested(item Item, flag string) string {
	var (
		first    = FirstName(item.InfluencerName)
		campaign = item.CampaignName
		link     = item.VideoLink
	)
	if campaign == "" {
		campaign = "the campaign"
	}
	if link == "" {
		link = "your post"
	}

	var lines []string
	switch {
	case flag == FlagTakeDown:
		lines = []string{
			"Hi " + first + ",",
			"We are issuing a takedown notice for your recent post for " + campaign + ":",
		}
		if item.IssueCaption != "" {
			lines = append(lines, item.IssueCaption)
		}
		lines = append(lines,
			"View it here: "+link,
			"Please take it down promptly.",
			"Thanks!",
		)
	case flag == FlagVideoOK:
		lines = []string{
			"Hi " + first + ",",
			"We are confirming that your recent post for " + campaign + " is approved:",
			"View it here: " + link,
			"It can remain online.",
			"Thanks!",
		}
	case item.HasIssues:
		lines = []string{
			"Hi " + first + ",",
			"We noticed issues with your recent post for " + campaign + ":",
		}
		if item.IssueCaption != "" {
			lines = append(lines, item.IssueCaption)
		}
		lines = append(lines,
			"View it here: "+link,
			"Please review and update.",
			"Thanks!",
		)
	default:
		lines = []string{
			"Hi " + first + ",",
			"Great job on your recent post for " + campaign + "!",
			"View it here: " + link,
			"Your content looks perfect and meets all requirements.",
			"Thank you for your excellent work!",
			"Keep it up!",
		}
	}

	return strings.Join(lines, "\n")
}

// NotUploadedReminder builds the upload-reminder message for an influencer
// who has not yet posted for the campaign.
func NotUploadedReminder(item Item) string {
	campaign := item.CampaignName
	if campaign == "" {
		campaign = "the campaign"
	}
	return strings.Join([]string{
		"Hi " + FirstName(item.InfluencerName) + ",",
		"We noticed you haven't uploaded your video for " + campaign + " yet.",
		"Please upload it as soon as possible.",
		"Thanks!",
	}, "\n")
}
