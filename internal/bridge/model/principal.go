package model

// Principal identifies a caller of bridge operations.
type Principal string

// Anonymous is the zero principal; it holds no role.
const Anonymous Principal = ""
