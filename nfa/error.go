package nfa

// InvalidState represents an invalid/uninitialized state id. It is never
// produced by Build or EliminateEpsilon; reaching it would indicate a
// programmer error in the pipeline, not a malformed pattern.
const InvalidState StateID = 0xFFFFFFFF
