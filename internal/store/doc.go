package store

// Package store keeps the ordered in-memory list of to-do tasks. It owns task
// creation and removal; task status is mutated in place by the UI rows.
