package studio

import "fmt"

// Fixed assistant texts. Gateway failures are reported with these instead of
// the underlying error.
const (
	WelcomeText      = "Great photo! Select a style above to reimagine this space, or type a custom instruction below."
	StyleFailedText  = "Sorry, I encountered an error generating the design. Please try again."
	RefinedText      = "I've updated the design based on your feedback."
	RefineFailedText = "I couldn't update the image. Please try a simpler instruction."
	ChatFailedText   = "I'm having trouble connecting right now."
)

// StyleAppliedText announces a finished style transform.
func StyleAppliedText(styleName string) string {
	return fmt.Sprintf("Here is the %s version of your room! Use the slider to compare. You can refine this further in the chat.", styleName)
}
