package model

// Package model defines the to-do domain: the Task entity and its three-state
// status. Status transitions are expressed as pure functions on TaskStatus so
// the UI only has to apply them and re-render.
