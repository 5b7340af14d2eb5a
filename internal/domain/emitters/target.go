package emitters

import (
	"fmt"

	m "github.com/mouse-blink/eghc/internal/model"
)

// Refresh renders the DOM mutation bringing target up to date. value is the
// rendered expression for text and attribute targets.
func Refresh(target *m.DependencyTarget, value string) (string, error) {
	node := Node(target.NodeID)

	switch target.Type {
	case m.TargetTextContent:
		return SetText(node, value), nil
	case m.TargetAttribute:
		return SetAttribute(node, target.Name, value), nil
	case m.TargetStructural:
		return BlockUpdate(target.Block) + "();", nil
	case m.TargetEventListener:
		return "", fmt.Errorf("%w: event listeners are registered once", ErrNoEmitter)
	default:
		return "", fmt.Errorf("%w: %s", ErrNoEmitter, target.Type)
	}
}
