// Package outcome places the two arms of a trial and pre-samples their rewards.
//
// Every context pair c owns two arms with ids 2c and 2c+1, a fixed probability
// pair (index 0 ≥ index 1) and a color pair. Per trial:
//
//  1. One fair coin decides the layout. Heads keeps the forward order
//     (ids [2c, 2c+1], probabilities and colors as stored, CorrectSide=1);
//     tails reverses all three (CorrectSide=0).
//  2. Each side, left then right, draws its outcome independently: High with
//     the side's probability, Low otherwise.
//
// Outcomes are sampled here, at generation time, so presentation only replays
// them. The probability table, reward values and color assignment are passed
// explicitly; nothing is read from package state.
package outcome
