package cli

import "pub-trivia-service/internal/domain"

// samplePools provides a built-in authored pool so the service runs without
// Postgres; swap in the database loader for production catalogs.
func samplePools() map[string][]domain.Question {
	return map[string][]domain.Question{
		"default": {
			{Category: "Christmas Movies", Prompt: "In 'Home Alone', where does Kevin's family go on vacation?", Options: []string{"Paris", "London", "Rome", "Madrid"}, Correct: 0, Points: 1},
			{Category: "Christmas Movies", Prompt: "What's the name of the Grinch's dog?", Options: []string{"Max", "Rex", "Buddy", "Charlie"}, Correct: 0, Points: 1},
			{Category: "Christmas Movies", Prompt: "In 'Elf', what are the four main food groups?", Options: []string{"Candy, candy canes, candy corns, syrup", "Sugar, sweets, chocolate, gum", "Cookies, cake, ice cream, candy", "Chocolate, caramel, fudge, toffee"}, Correct: 0, Points: 1},
			{Category: "Christmas Songs", Prompt: "Which song contains the lyric 'Chestnuts roasting on an open fire'?", Options: []string{"The Christmas Song", "White Christmas", "Silver Bells", "Let it Snow"}, Correct: 0, Points: 1},
			{Category: "Christmas Songs", Prompt: "In 'The Twelve Days of Christmas', what is given on the 5th day?", Options: []string{"Five golden rings", "Five calling birds", "Five French hens", "Five geese a-laying"}, Correct: 0, Points: 1},
			{Category: "Christmas Songs", Prompt: "Who originally sang 'Blue Christmas'?", Options: []string{"Elvis Presley", "Bing Crosby", "Frank Sinatra", "Dean Martin"}, Correct: 0, Points: 1},
			{Category: "Christmas Traditions", Prompt: "Which country started the tradition of putting up a Christmas tree?", Options: []string{"Germany", "England", "France", "Norway"}, Correct: 0, Points: 1},
			{Category: "Christmas Food", Prompt: "What spice is used to flavor traditional Christmas eggnog?", Options: []string{"Nutmeg", "Cinnamon", "Cloves", "Ginger"}, Correct: 0, Points: 1},
			{Category: "Santa & Reindeer", Prompt: "How many reindeer pull Santa's sleigh (including Rudolph)?", Options: []string{"9", "8", "10", "7"}, Correct: 0, Points: 1},
			{Category: "Christmas Around World", Prompt: "In which country is it traditional to eat KFC for Christmas dinner?", Options: []string{"Japan", "China", "Korea", "Thailand"}, Correct: 0, Points: 1},
			{Category: "Music", Prompt: "Which instrument has 88 keys?", Options: []string{"Organ", "Piano", "Harpsichord", "Accordion"}, Correct: 1, Points: 1},
			{Category: "Music", Prompt: "What does 'forte' mean in music?", Options: []string{"Soft", "Loud", "Fast", "Slow"}, Correct: 1, Points: 1},
			{Category: "Music", Prompt: "Which band released the album 'Abbey Road'?", Options: []string{"The Rolling Stones", "The Beatles", "Led Zeppelin", "Pink Floyd"}, Correct: 1, Points: 1},
			{Category: "Music", Prompt: "What is the highest female singing voice?", Options: []string{"Alto", "Soprano", "Mezzo-soprano", "Contralto"}, Correct: 1, Points: 1},
			{Category: "Music", Prompt: "How many strings does a standard guitar have?", Options: []string{"5", "6", "7", "8"}, Correct: 1, Points: 1},
			{Category: "Geography", Prompt: "What is the capital of Australia?", Options: []string{"Sydney", "Melbourne", "Canberra", "Perth"}, Correct: 2, Points: 1},
			{Category: "Science", Prompt: "What is the chemical symbol for gold?", Options: []string{"Go", "Gd", "Au", "Ag"}, Correct: 2, Points: 1},
			{Category: "History", Prompt: "In which year did World War II end?", Options: []string{"1944", "1945", "1946", "1947"}, Correct: 1, Points: 1},
			{Category: "Sports", Prompt: "How many players are on a basketball team on court at one time?", Options: []string{"4", "5", "6", "7"}, Correct: 1, Points: 1},
			{Category: "Nature", Prompt: "What is the largest mammal in the world?", Options: []string{"African Elephant", "Blue Whale", "Giraffe", "Polar Bear"}, Correct: 1, Points: 1},
			{Category: "2025 Events", Prompt: "Which major sporting event is scheduled for 2025?", Options: []string{"FIFA Women's World Cup", "Summer Olympics", "Winter Olympics", "UEFA European Championship"}, Correct: 0, Points: 1},
			{Category: "2025 Events", Prompt: "What significant anniversary does the United Nations celebrate in 2025?", Options: []string{"75th", "80th", "85th", "90th"}, Correct: 1, Points: 1},
			{Category: "2025 Events", Prompt: "Which country is hosting the World Expo 2025?", Options: []string{"UAE", "Japan", "France", "Germany"}, Correct: 1, Points: 1},
			{Category: "2025 Events", Prompt: "What major tech event typically happens annually and will occur in 2025?", Options: []string{"Apple WWDC", "Google I/O", "CES", "All of the above"}, Correct: 3, Points: 1},
			{Category: "2025 Events", Prompt: "Which planet will have a notable astronomical event visible from Earth in 2025?", Options: []string{"Mars", "Jupiter", "Saturn", "Venus"}, Correct: 2, Points: 1},
		},
	}
}
