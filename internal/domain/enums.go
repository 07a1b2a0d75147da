package domain

// RootGuard selects how the delete guard identifies the protected root.
type RootGuard string

const (
	// GuardPosition protects whichever node currently sits at top-level
	// position 0.
	GuardPosition RootGuard = "position"
	// GuardToken protects the node whose ID was captured when the forest was
	// seeded, regardless of where reordering has moved it.
	GuardToken RootGuard = "token"
)

// BroadcastScope selects which copy-tagged nodes a broadcast update reaches.
type BroadcastScope string

const (
	// ScopeGlobal updates every copy-tagged node in the forest.
	ScopeGlobal BroadcastScope = "global"
	// ScopeLineage updates only copies sharing the edited node's lineage.
	ScopeLineage BroadcastScope = "lineage"
)

// ValidRootGuards is the canonical set of accepted root guard strings.
var ValidRootGuards = map[string]bool{
	string(GuardPosition): true,
	string(GuardToken):    true,
}

// ValidBroadcastScopes is the canonical set of accepted broadcast scopes.
var ValidBroadcastScopes = map[string]bool{
	string(ScopeGlobal):  true,
	string(ScopeLineage): true,
}
