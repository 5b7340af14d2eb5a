package emitters

import "strconv"

// Listener returns the variable holding a registered handler.
func Listener(index int) string {
	return "$$listener_" + strconv.Itoa(index)
}

// AddEventListener registers handler on node.
func AddEventListener(node, event, handler string) string {
	return Call("addEventListener", node, JSString(event), handler)
}

// RemoveEventListener unregisters handler from node.
func RemoveEventListener(node, event, handler string) string {
	return Call("removeEventListener", node, JSString(event), handler)
}
