package words

// defaultWords is the built-in vocabulary used when no word file is supplied
func defaultWords() []string {
	return []string{
		"apple", "banana", "bicycle", "bridge", "butterfly",
		"camera", "candle", "castle", "caterpillar", "chair",
		"clock", "cloud", "computer", "crocodile", "dinosaur",
		"dolphin", "dragon", "drum", "elephant", "envelope",
		"fireworks", "flower", "fork", "giraffe", "guitar",
		"hamburger", "helicopter", "house", "ice cream", "island",
		"jellyfish", "kangaroo", "keyboard", "ladder", "lighthouse",
		"lightning", "mountain", "mushroom", "octopus", "panda",
		"parachute", "penguin", "piano", "pineapple", "pirate",
		"pizza", "rainbow", "robot", "rocket", "sandwich",
		"scissors", "snowman", "spaceship", "spider", "submarine",
		"sunflower", "telescope", "tornado", "tractor", "treehouse",
		"trumpet", "turtle", "umbrella", "unicorn", "volcano",
		"waterfall", "whale", "windmill", "wizard", "zebra",
	}
}
