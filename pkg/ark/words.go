package ark

// Built-in word lists for the default adjective × animal name space.
// The lists are frozen: removing or reordering entries would change the
// meaning of every linear index issued by existing seeds.

var defaultAdjectives = []string{
	"Agile", "Ancient", "Angry", "Bashful", "Bold", "Brave", "Bright",
	"Calm", "Clever", "Curious", "Daring", "Eager", "Fancy", "Fast",
	"Fierce", "Fuzzy", "Gentle", "Giant", "Happy", "Hungry", "Jolly",
	"Lazy", "Lively", "Lucky", "Mighty", "Nervous", "Noisy", "Peaceful",
	"Playful", "Proud", "Quiet", "Quick", "Rapid", "Rare", "Restless",
	"Sassy", "Shiny", "Shy", "Silent", "Sleepy", "Smart", "Sneaky",
	"Speedy", "Spicy", "Stealthy", "Strong", "Sweet", "Swift",
	"Tiny", "Tough", "Vivid", "Wild", "Wise", "Zany",
}

var defaultAnimals = []string{
	"Ant", "Badger", "Bat", "Bear", "Beaver", "Bee", "Bison", "Boar",
	"Buffalo", "Camel", "Cat", "Chicken", "Cobra", "Cougar", "Cow",
	"Crab", "Crane", "Crocodile", "Crow", "Deer", "Dog", "Dolphin",
	"Donkey", "Dragon", "Duck", "Eagle", "Falcon", "Ferret", "Fish",
	"Fox", "Frog", "Goat", "Goose", "Hamster", "Hawk", "Hippo", "Horse",
	"Jackal", "Jaguar", "Kangaroo", "Koala", "Leopard", "Lion",
	"Lizard", "Llama", "Monkey", "Moose", "Mouse", "Octopus",
	"Otter", "Owl", "Ox", "Panda", "Panther", "Parrot", "Penguin",
	"Pig", "Pigeon", "Rabbit", "Raccoon", "Rat", "Raven", "Seal",
	"Shark", "Sheep", "Sloth", "Snake", "Sparrow", "Squid", "Swan",
	"Tiger", "Turkey", "Turtle", "Weasel", "Whale", "Wolf", "Zebra",
}
