// Package game runs one "Connections" session: the player walks from a start
// artist to a target artist one adjacent guess at a time.
//
// Phases
//
//	idle ──StartGame──▶ setup ──BeginPlaying──▶ playing ──(reach target)──▶ complete
//	  ▲                   │                       │                            │
//	  └──────ExitGame─────┴───────────────────────┴────────────────────────────┘
//	                      NewChallenge regenerates into setup from setup, playing or complete.
//
// Every public mutator is dispatched through a table keyed by (phase, event).
// An event with no entry for the current phase is a programmer error and
// returns ErrWrongPhase. Expected gameplay outcomes (unknown name, node not
// adjacent to the tail, node already on the path, ineligible hint target)
// are reported as a Result, never as an error.
//
// Display state of a node is derived in priority order
// target > current > start > path > failed > revealed > hidden.
//
// A Session is safe for concurrent use; mutating calls are serialised.
package game
