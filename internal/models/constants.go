package models

// ============================================================================
// FILTER CONSTANTS
// ============================================================================

// FilterAll is the sentinel filter value that matches every task
const FilterAll = "all"

// ============================================================================
// STORAGE CONSTANTS
// ============================================================================

// DefaultSlotKey names the durable slot holding the task snapshot
const DefaultSlotKey = "kanban-tasks"
