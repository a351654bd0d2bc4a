package service

import (
	"fmt"
	"strings"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
)

const (
	pincodeServiceable    = "Great news! Pin %s is serviceable. BlinkLean services are available in your area."
	pincodeServiceableAct = "Schedule your Scrap Pickup now."
	pincodeLaunching      = "Currently, BlinkLean services are launching soon in your area (Pin: %s). Stay tuned!"
	pincodeLaunchingAct   = "Download the app to be notified."
)

// Assistant answers customer chat messages.
type Assistant interface {
	Reply(message, pincode string) model.ChatReply
}

// AssistantService is a rule-based responder over a static script.
type AssistantService struct {
	script *catalog.AssistantScript
}

// NewAssistantService creates the responder.
func NewAssistantService(script *catalog.AssistantScript) *AssistantService {
	return &AssistantService{script: script}
}

// Reply answers a pincode from the serviceable list when one is given,
// otherwise the first matching intent, otherwise the fallback.
func (s *AssistantService) Reply(message, pincode string) model.ChatReply {
	if pin := strings.TrimSpace(pincode); pin != "" {
		if s.script.IsServiceablePincode(pin) {
			return model.ChatReply{
				Response:        fmt.Sprintf(pincodeServiceable, pin),
				SuggestedAction: pincodeServiceableAct,
			}
		}
		return model.ChatReply{
			Response:        fmt.Sprintf(pincodeLaunching, pin),
			SuggestedAction: pincodeLaunchingAct,
		}
	}

	if intent, ok := s.script.Match(message); ok {
		return model.ChatReply{Response: intent.Response, SuggestedAction: intent.Action}
	}
	return model.ChatReply{
		Response:        s.script.Fallback.Response,
		SuggestedAction: s.script.Fallback.Action,
	}
}
