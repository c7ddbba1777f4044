package searcher

// Hyperparameters for the Monte Carlo selectors

const DefaultDiscardSimulations = 500
const DefaultPeggingSimulations = 200

// The crib only pays its full value to the dealer, so a crib the opponent will
// own is charged at a discount.
const OpponentCribWeight = 0.9
