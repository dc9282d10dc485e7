// Package physics provides the vector math and kinematic integration used by
// every moving entity in the game.
package physics
