package service

import (
	"fmt"
	"html"
	"strings"
)

// CommunityLinkedInURL is the page linked from every welcome message.
const CommunityLinkedInURL = "https://www.linkedin.com/company/110331955"

// welcomeParagraphs is the single source for the welcome text. The in-app
// copy button and the approval email both render from it so the two can
// never drift apart.
func welcomeParagraphs(contributor bool) []string {
	paragraphs := []string{
		"Firstly, thank you for taking the time to apply to join our new Bizcelona community. We enjoyed reading your application and your set of skills and experiences and are delighted to welcome you to the community. Right now we are in the soft launch phase, so congratulations on being one of our original members. This will give you a chance to shape the community as we look to build the best community.",
		"You will shortly be added or receive an invite to the main group where we will be organising a more formal introduction and start sharing our ideas and plans to make this community the best around. Please note, that we are an active community and we want people that will contribute and participate in the discussion and helping others.",
		`We operate a mantra which is "give before you take" so please have this in mind.`,
	}
	if contributor {
		paragraphs = append(paragraphs,
			"You did mention that you would like to be a contributor, and to shape the community - this is appreciated and we will be in touch shortly to see how you might be able to help us to build this community.")
	}
	paragraphs = append(paragraphs,
		"In the meantime, please follow our page on LinkedIn: "+CommunityLinkedInURL,
		"See you in the groups!")
	return paragraphs
}

// WelcomeMessageText renders the plain-text welcome message shown behind the
// admin copy-to-clipboard button.
func WelcomeMessageText(name string, contributor bool) string {
	parts := append([]string{fmt.Sprintf("Dear %s,", name)}, welcomeParagraphs(contributor)...)
	return strings.Join(parts, "\n\n")
}

// welcomeMessageHTML renders the same paragraphs for the approval email body.
func welcomeMessageHTML(name string, contributor bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Dear %s,</p>\n", html.EscapeString(name))
	for _, paragraph := range welcomeParagraphs(contributor) {
		escaped := html.EscapeString(paragraph)
		escaped = strings.Replace(escaped, CommunityLinkedInURL,
			fmt.Sprintf(`<a href="%s">%s</a>`, CommunityLinkedInURL, CommunityLinkedInURL), 1)
		fmt.Fprintf(&b, "<p>%s</p>\n", escaped)
	}
	return b.String()
}
