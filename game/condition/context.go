package condition

import "github.com/magefree/mage-conditions-go/game/state"

// evalContext bundles the inputs of one evaluation call for the handler
// resolvers.
type evalContext struct {
	snap       *state.Snapshot
	controller string
	source     *state.Permanent
	refs       *Refs
}

// player returns the controlling player, or nil.
func (c *evalContext) player() *state.Player {
	return c.snap.Player(c.controller)
}

// triggeringStackItem resolves the stack item referenced by the refs bag.
// It falls back to a stack item whose card matches the source permanent's
// name only when the stack holds exactly one such item.
func (c *evalContext) triggeringStackItem() *state.StackItem {
	if item := c.snap.StackItemByID(c.refs.stackItem()); item != nil {
		return item
	}
	if c.source == nil || c.snap == nil {
		return nil
	}
	var found *state.StackItem
	for _, item := range c.snap.Stack {
		if item.Name() != "" && item.Name() == c.source.Name() {
			if found != nil {
				return nil
			}
			found = item
		}
	}
	return found
}

// opponents resolves the controller's opponents.
func (c *evalContext) opponents() ([]*state.Player, bool) {
	return c.snap.Opponents(c.controller)
}
