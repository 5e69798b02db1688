package catalog

import (
	"math/rand"

	"brainybunch/internal/model"
)

// q builds an immutable question record with its combined answer list
// shuffled up front, so answer position carries no information.
func q(id, prompt, correct string, incorrect []string, category string, difficulty model.Difficulty) *model.Question {
	all := make([]string, 0, len(incorrect)+1)
	all = append(all, correct)
	all = append(all, incorrect...)
	rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	return &model.Question{
		ID:               id,
		Prompt:           prompt,
		CorrectAnswer:    correct,
		IncorrectAnswers: incorrect,
		AllAnswers:       all,
		Category:         category,
		Difficulty:       difficulty,
	}
}

var bank = map[string][]*model.Question{
	"eighties_music": {
		q("80s-1", "Which artist released 'Thriller' in 1982?", "Michael Jackson", []string{"Prince", "Madonna", "Whitney Houston"}, "eighties_music", model.DifficultyEasy),
		q("80s-2", "What was Madonna's first #1 hit?", "Like a Virgin", []string{"Material Girl", "Papa Don't Preach", "Holiday"}, "eighties_music", model.DifficultyMedium),
		q("80s-3", "Which band sang 'Take On Me'?", "a-ha", []string{"Duran Duran", "Tears for Fears", "Depeche Mode"}, "eighties_music", model.DifficultyMedium),
		q("80s-4", "Who performed 'Purple Rain'?", "Prince", []string{"Michael Jackson", "George Michael", "Lionel Richie"}, "eighties_music", model.DifficultyEasy),
		q("80s-5", "Which song starts with 'Just a small town girl'?", "Don't Stop Believin'", []string{"Livin' on a Prayer", "Eye of the Tiger", "We Built This City"}, "eighties_music", model.DifficultyMedium),
		q("80s-6", "Who sang 'Girls Just Want to Have Fun'?", "Cyndi Lauper", []string{"Madonna", "Pat Benatar", "Debbie Harry"}, "eighties_music", model.DifficultyMedium),
		q("80s-7", "Which British band sang 'Every Breath You Take'?", "The Police", []string{"U2", "Duran Duran", "The Cure"}, "eighties_music", model.DifficultyMedium),
		q("80s-8", "What year was 'Billie Jean' released?", "1983", []string{"1982", "1984", "1985"}, "eighties_music", model.DifficultyMedium),
		q("80s-9", "Who sang 'Sweet Child O' Mine'?", "Guns N' Roses", []string{"Aerosmith", "Van Halen", "Bon Jovi"}, "eighties_music", model.DifficultyMedium),
		q("80s-10", "Which artist had a hit with 'I Wanna Dance with Somebody'?", "Whitney Houston", []string{"Janet Jackson", "Madonna", "Tina Turner"}, "eighties_music", model.DifficultyMedium),
		q("80s-11", "What was the best-selling album of the 1980s?", "Thriller", []string{"Back in Black", "Purple Rain", "Born in the U.S.A."}, "eighties_music", model.DifficultyMedium),
		q("80s-12", "Who sang 'Wake Me Up Before You Go-Go'?", "Wham!", []string{"Culture Club", "Duran Duran", "Spandau Ballet"}, "eighties_music", model.DifficultyMedium),
		q("80s-13", "Which artist released 'Like a Prayer' in 1989?", "Madonna", []string{"Janet Jackson", "Whitney Houston", "Cyndi Lauper"}, "eighties_music", model.DifficultyMedium),
		q("80s-14", "What band performed 'Hungry Like the Wolf'?", "Duran Duran", []string{"a-ha", "The Police", "INXS"}, "eighties_music", model.DifficultyMedium),
		q("80s-15", "Who had a hit with 'Beat It'?", "Michael Jackson", []string{"Prince", "Van Halen", "Def Leppard"}, "eighties_music", model.DifficultyEasy),
		q("80s-16", "Who performed 'Karma Chameleon'?", "Culture Club", []string{"Wham!", "Duran Duran", "Frankie Goes to Hollywood"}, "eighties_music", model.DifficultyMedium),
		q("80s-17", "What year did Live Aid take place?", "1985", []string{"1984", "1986", "1987"}, "eighties_music", model.DifficultyMedium),
		q("80s-18", "Who sang 'Total Eclipse of the Heart'?", "Bonnie Tyler", []string{"Heart", "Pat Benatar", "Stevie Nicks"}, "eighties_music", model.DifficultyMedium),
		q("80s-19", "Which band released 'Pour Some Sugar on Me'?", "Def Leppard", []string{"Bon Jovi", "Poison", "Whitesnake"}, "eighties_music", model.DifficultyMedium),
		q("80s-20", "Who performed 'Footloose'?", "Kenny Loggins", []string{"Huey Lewis", "Phil Collins", "Rick Springfield"}, "eighties_music", model.DifficultyMedium),
	},
	"two_thousands_music": {
		q("2000s-1", "Who sang 'Crazy in Love' featuring Jay-Z?", "Beyoncé", []string{"Rihanna", "Alicia Keys", "Christina Aguilera"}, "two_thousands_music", model.DifficultyEasy),
		q("2000s-2", "Which artist released '8 Mile' and 'Lose Yourself'?", "Eminem", []string{"50 Cent", "Jay-Z", "Kanye West"}, "two_thousands_music", model.DifficultyEasy),
		q("2000s-3", "What was Britney Spears' big 2000 hit?", "Oops!...I Did It Again", []string{"Toxic", "Stronger", "Lucky"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-4", "Who sang 'In Da Club'?", "50 Cent", []string{"Eminem", "Nelly", "Ja Rule"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-5", "Which boy band sang 'Bye Bye Bye'?", "NSYNC", []string{"Backstreet Boys", "98 Degrees", "O-Town"}, "two_thousands_music", model.DifficultyEasy),
		q("2000s-6", "Who performed 'Hot in Herre'?", "Nelly", []string{"Ludacris", "Chingy", "Ja Rule"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-7", "What artist sang 'Since U Been Gone'?", "Kelly Clarkson", []string{"Avril Lavigne", "Pink", "Ashlee Simpson"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-8", "Which band performed 'Mr. Brightside'?", "The Killers", []string{"Green Day", "Fall Out Boy", "My Chemical Romance"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-9", "Who had a hit with 'Gold Digger'?", "Kanye West", []string{"Jay-Z", "50 Cent", "T.I."}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-10", "What was Usher's huge 2004 hit?", "Yeah!", []string{"Burn", "Confessions Part II", "My Boo"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-11", "Which artist sang 'Umbrella'?", "Rihanna", []string{"Beyoncé", "Ciara", "Ashanti"}, "two_thousands_music", model.DifficultyEasy),
		q("2000s-12", "Who performed 'Bring Me to Life'?", "Evanescence", []string{"Linkin Park", "Three Days Grace", "Breaking Benjamin"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-13", "Which pop star sang 'Genie in a Bottle'?", "Christina Aguilera", []string{"Britney Spears", "Jessica Simpson", "Mandy Moore"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-14", "Who had the hit 'American Idiot'?", "Green Day", []string{"Blink-182", "Sum 41", "Good Charlotte"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-15", "What artist released 'Hips Don't Lie'?", "Shakira", []string{"Jennifer Lopez", "Christina Aguilera", "Beyoncé"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-16", "Which band sang 'Sugar, We're Goin Down'?", "Fall Out Boy", []string{"Panic! At The Disco", "My Chemical Romance", "Paramore"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-17", "What was Justin Timberlake's first solo #1 hit?", "SexyBack", []string{"Cry Me a River", "Rock Your Body", "Like I Love You"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-18", "Who sang 'Complicated'?", "Avril Lavigne", []string{"Michelle Branch", "Vanessa Carlton", "Ashlee Simpson"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-19", "What band performed 'Boulevard of Broken Dreams'?", "Green Day", []string{"The Killers", "Coldplay", "Foo Fighters"}, "two_thousands_music", model.DifficultyMedium),
		q("2000s-20", "What was Outkast's biggest hit?", "Hey Ya!", []string{"The Way You Move", "Roses", "So Fresh, So Clean"}, "two_thousands_music", model.DifficultyEasy),
	},
	"tv_shows": {
		q("tv-1", "What coffee shop do the Friends hang out at?", "Central Perk", []string{"Java Joe's", "The Coffee House", "Cafe Mocha"}, "tv_shows", model.DifficultyEasy),
		q("tv-2", "What is the name of the paper company in The Office?", "Dunder Mifflin", []string{"Staples", "Paper Plus", "Scott's Tots Paper Co."}, "tv_shows", model.DifficultyEasy),
		q("tv-3", "What is Kramer's first name on Seinfeld?", "Cosmo", []string{"George", "Jerry", "Newman"}, "tv_shows", model.DifficultyMedium),
		q("tv-4", "Which show features the phrase 'How you doin'?'", "Friends", []string{"Seinfeld", "Frasier", "Will & Grace"}, "tv_shows", model.DifficultyEasy),
		q("tv-5", "What city is Frasier set in?", "Seattle", []string{"Boston", "San Francisco", "Chicago"}, "tv_shows", model.DifficultyMedium),
		q("tv-6", "Who is Michael Scott's arch-nemesis from HR?", "Toby Flenderson", []string{"Todd Packer", "Jan Levinson", "Charles Miner"}, "tv_shows", model.DifficultyMedium),
		q("tv-7", "What is the name of Jerry Seinfeld's neighbor across the hall?", "Newman", []string{"Kramer", "George", "Frank"}, "tv_shows", model.DifficultyMedium),
		q("tv-8", "Who played Carrie Bradshaw in Sex and the City?", "Sarah Jessica Parker", []string{"Kim Cattrall", "Kristin Davis", "Cynthia Nixon"}, "tv_shows", model.DifficultyMedium),
		q("tv-9", "What was the name of the bar in How I Met Your Mother?", "MacLaren's Pub", []string{"The Pub", "Puzzles", "Paddy's Pub"}, "tv_shows", model.DifficultyMedium),
		q("tv-10", "Which character says 'That's what she said' frequently?", "Michael Scott", []string{"Dwight Schrute", "Jim Halpert", "Kevin Malone"}, "tv_shows", model.DifficultyEasy),
		q("tv-11", "What is Chandler Bing's job?", "Statistical Analysis and Data Reconfiguration", []string{"Accountant", "Marketing", "IT Consultant"}, "tv_shows", model.DifficultyHard),
		q("tv-12", "Which TV show introduced us to Springfield?", "The Simpsons", []string{"Family Guy", "South Park", "King of the Hill"}, "tv_shows", model.DifficultyEasy),
		q("tv-13", "What does Phoebe's most famous song describe?", "A Smelly Cat", []string{"A Silly Dog", "A Crazy Bird", "A Lazy Mouse"}, "tv_shows", model.DifficultyMedium),
		q("tv-14", "What is the name of Dwight's farm?", "Schrute Farms", []string{"Schrute Beets", "Dwight's Den", "The Beet Farm"}, "tv_shows", model.DifficultyMedium),
		q("tv-15", "In Friends, what was the name of Ross's monkey?", "Marcel", []string{"Charlie", "George", "Clyde"}, "tv_shows", model.DifficultyMedium),
		q("tv-16", "What show features the catchphrase 'Yada yada yada'?", "Seinfeld", []string{"Friends", "Frasier", "Cheers"}, "tv_shows", model.DifficultyMedium),
		q("tv-17", "How many seasons did Friends run?", "10", []string{"8", "9", "12"}, "tv_shows", model.DifficultyMedium),
		q("tv-18", "Who is Jim's love interest in The Office?", "Pam Beesly", []string{"Angela Martin", "Kelly Kapoor", "Karen Filippelli"}, "tv_shows", model.DifficultyEasy),
		q("tv-19", "What show features Ted Mosby telling his kids a story?", "How I Met Your Mother", []string{"Friends", "The Big Bang Theory", "New Girl"}, "tv_shows", model.DifficultyMedium),
		q("tv-20", "Who plays Barney Stinson in How I Met Your Mother?", "Neil Patrick Harris", []string{"Jason Segel", "Josh Radnor", "Bob Saget"}, "tv_shows", model.DifficultyMedium),
	},
	"classic_movies": {
		q("classic-1", "In what movie does Humphrey Bogart say 'Here's looking at you, kid'?", "Casablanca", []string{"The Maltese Falcon", "The Big Sleep", "Key Largo"}, "classic_movies", model.DifficultyEasy),
		q("classic-2", "Who directed 'Citizen Kane'?", "Orson Welles", []string{"Alfred Hitchcock", "John Ford", "Billy Wilder"}, "classic_movies", model.DifficultyMedium),
		q("classic-3", "What is the name of the mansion in 'Gone with the Wind'?", "Tara", []string{"Twelve Oaks", "Manderley", "Xanadu"}, "classic_movies", model.DifficultyMedium),
		q("classic-4", "Who played Dorothy in 'The Wizard of Oz'?", "Judy Garland", []string{"Shirley Temple", "Deanna Durbin", "Mickey Rooney"}, "classic_movies", model.DifficultyEasy),
		q("classic-5", "What was Rosebud in 'Citizen Kane'?", "A sled", []string{"A woman", "A horse", "A painting"}, "classic_movies", model.DifficultyMedium),
		q("classic-6", "Who starred in 'Some Like It Hot' with Tony Curtis and Jack Lemmon?", "Marilyn Monroe", []string{"Audrey Hepburn", "Grace Kelly", "Elizabeth Taylor"}, "classic_movies", model.DifficultyMedium),
		q("classic-7", "What Alfred Hitchcock film features the Bates Motel?", "Psycho", []string{"Vertigo", "The Birds", "Rear Window"}, "classic_movies", model.DifficultyMedium),
		q("classic-8", "Who played Scarlett O'Hara in 'Gone with the Wind'?", "Vivien Leigh", []string{"Bette Davis", "Katharine Hepburn", "Joan Crawford"}, "classic_movies", model.DifficultyMedium),
		q("classic-9", "In 'Singin' in the Rain', what new technology threatens Hollywood?", "Talking pictures (talkies)", []string{"Television", "Color film", "Wide screen"}, "classic_movies", model.DifficultyMedium),
		q("classic-10", "Who directed 'It's a Wonderful Life'?", "Frank Capra", []string{"John Ford", "Howard Hawks", "William Wyler"}, "classic_movies", model.DifficultyMedium),
		q("classic-11", "What year was 'Casablanca' released?", "1942", []string{"1940", "1944", "1946"}, "classic_movies", model.DifficultyMedium),
		q("classic-12", "What classic film features the line 'Frankly, my dear, I don't give a damn'?", "Gone with the Wind", []string{"Casablanca", "The Maltese Falcon", "Citizen Kane"}, "classic_movies", model.DifficultyEasy),
		q("classic-13", "Who was known as 'The King of Hollywood'?", "Clark Gable", []string{"Cary Grant", "James Stewart", "Gary Cooper"}, "classic_movies", model.DifficultyMedium),
		q("classic-14", "What 1939 film features the line 'There's no place like home'?", "The Wizard of Oz", []string{"Gone with the Wind", "Mr. Smith Goes to Washington", "Stagecoach"}, "classic_movies", model.DifficultyEasy),
		q("classic-15", "Who starred opposite Katharine Hepburn in 'The African Queen'?", "Humphrey Bogart", []string{"Spencer Tracy", "Cary Grant", "James Stewart"}, "classic_movies", model.DifficultyMedium),
		q("classic-16", "Who directed 'Rear Window' and 'Vertigo'?", "Alfred Hitchcock", []string{"Billy Wilder", "John Huston", "Otto Preminger"}, "classic_movies", model.DifficultyMedium),
		q("classic-17", "Who played the lead in 'Roman Holiday' (1953)?", "Audrey Hepburn", []string{"Grace Kelly", "Elizabeth Taylor", "Ingrid Bergman"}, "classic_movies", model.DifficultyMedium),
		q("classic-18", "What classic film features the song 'As Time Goes By'?", "Casablanca", []string{"An American in Paris", "Singin' in the Rain", "The Band Wagon"}, "classic_movies", model.DifficultyMedium),
		q("classic-19", "Who was Fred Astaire's most famous dance partner?", "Ginger Rogers", []string{"Cyd Charisse", "Rita Hayworth", "Eleanor Powell"}, "classic_movies", model.DifficultyMedium),
		q("classic-20", "What film features the quote 'I coulda been a contender'?", "On the Waterfront", []string{"A Streetcar Named Desire", "The Godfather", "Raging Bull"}, "classic_movies", model.DifficultyMedium),
	},
	"holiday_movies": {
		q("holiday-1", "What do the kids want for Christmas in 'Jingle All the Way'?", "Turbo Man action figure", []string{"Power Ranger", "Tickle Me Elmo", "Buzz Lightyear"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-2", "In 'Home Alone', where are the McCallisters going on vacation?", "Paris", []string{"London", "Hawaii", "Florida"}, "holiday_movies", model.DifficultyEasy),
		q("holiday-3", "What is the name of the main character in 'Elf'?", "Buddy", []string{"Jack", "Santa Jr.", "Jingle"}, "holiday_movies", model.DifficultyEasy),
		q("holiday-4", "In 'A Christmas Story', what does Ralphie want for Christmas?", "Red Ryder BB Gun", []string{"Football", "Sled", "Bicycle"}, "holiday_movies", model.DifficultyEasy),
		q("holiday-5", "What town is 'It's a Wonderful Life' set in?", "Bedford Falls", []string{"Springfield", "Pleasantville", "Smallville"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-6", "Who plays the Grinch in the 2000 live-action film?", "Jim Carrey", []string{"Mike Myers", "Robin Williams", "Eddie Murphy"}, "holiday_movies", model.DifficultyEasy),
		q("holiday-7", "In 'Die Hard', what building does the action take place in?", "Nakatomi Plaza", []string{"Trump Tower", "Empire State Building", "Willis Tower"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-8", "What is the name of the angel in 'It's a Wonderful Life'?", "Clarence", []string{"Gabriel", "Michael", "Raphael"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-9", "In 'The Santa Clause', what happens when Scott Calvin puts on the suit?", "He becomes Santa", []string{"He gets superpowers", "He shrinks", "He can fly"}, "holiday_movies", model.DifficultyEasy),
		q("holiday-10", "What Christmas movie features the song 'White Christmas'?", "White Christmas", []string{"Holiday Inn", "It's a Wonderful Life", "Miracle on 34th Street"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-11", "In 'Home Alone 2', where does Kevin end up?", "New York City", []string{"Chicago", "Los Angeles", "Miami"}, "holiday_movies", model.DifficultyEasy),
		q("holiday-12", "What does Buddy the Elf put on his spaghetti?", "Maple syrup", []string{"Chocolate sauce", "Whipped cream", "Honey"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-13", "In 'A Christmas Carol', what is Scrooge's first name?", "Ebenezer", []string{"Edward", "Edgar", "Edmund"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-14", "What store is featured in 'Miracle on 34th Street'?", "Macy's", []string{"Bloomingdale's", "Gimbels", "Saks Fifth Avenue"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-15", "In 'National Lampoon's Christmas Vacation', what does Clark want to buy with his Christmas bonus?", "A swimming pool", []string{"A new car", "A vacation", "A boat"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-16", "In 'Elf', what are the four main food groups according to elves?", "Candy, candy canes, candy corns, and syrup", []string{"Cookies, milk, presents, trees", "Sugar, chocolate, gum, mints", "Cake, pie, ice cream, pudding"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-17", "What Christmas movie stars Macaulay Culkin defending his home?", "Home Alone", []string{"The Good Son", "My Girl", "Richie Rich"}, "holiday_movies", model.DifficultyEasy),
		q("holiday-18", "In 'How the Grinch Stole Christmas', what does the Grinch's heart do?", "Grows three sizes", []string{"Melts", "Turns red", "Starts beating"}, "holiday_movies", model.DifficultyMedium),
		q("holiday-19", "What is the name of the reindeer with a red nose?", "Rudolph", []string{"Dasher", "Prancer", "Blitzen"}, "holiday_movies", model.DifficultyEasy),
		q("holiday-20", "What actor plays six different roles in 'The Polar Express'?", "Tom Hanks", []string{"Jim Carrey", "Robin Williams", "Eddie Murphy"}, "holiday_movies", model.DifficultyMedium),
	},
	"reality_tv": {
		q("reality-1", "What is the final challenge in 'Survivor' usually for?", "Immunity", []string{"Money", "Food", "A car"}, "reality_tv", model.DifficultyMedium),
		q("reality-2", "Who was the first winner of 'American Idol'?", "Kelly Clarkson", []string{"Carrie Underwood", "Ruben Studdard", "Fantasia Barrino"}, "reality_tv", model.DifficultyEasy),
		q("reality-3", "What do contestants receive on 'The Bachelor'?", "A rose", []string{"A ring", "A key", "A necklace"}, "reality_tv", model.DifficultyEasy),
		q("reality-4", "What show features the phrase 'You're fired!'?", "The Apprentice", []string{"Shark Tank", "Undercover Boss", "Kitchen Nightmares"}, "reality_tv", model.DifficultyEasy),
		q("reality-5", "What cooking competition is hosted by Gordon Ramsay?", "Hell's Kitchen", []string{"Top Chef", "MasterChef", "Chopped"}, "reality_tv", model.DifficultyMedium),
		q("reality-6", "What show features drag queens competing?", "RuPaul's Drag Race", []string{"Project Runway", "America's Next Top Model", "Face Off"}, "reality_tv", model.DifficultyMedium),
		q("reality-7", "In 'Survivor', what is the location of the first season?", "Borneo", []string{"Africa", "Australia", "Thailand"}, "reality_tv", model.DifficultyMedium),
		q("reality-8", "What family stars in 'Keeping Up with the Kardashians'?", "Kardashian-Jenner", []string{"Hilton", "Osbourne", "Odom"}, "reality_tv", model.DifficultyEasy),
		q("reality-9", "What dating show features people in pods?", "Love Is Blind", []string{"The Bachelor", "Dating Around", "Too Hot to Handle"}, "reality_tv", model.DifficultyMedium),
		q("reality-10", "Who is the host of 'Survivor'?", "Jeff Probst", []string{"Phil Keoghan", "Ryan Seacrest", "Chris Harrison"}, "reality_tv", model.DifficultyMedium),
		q("reality-11", "What show features entrepreneurs pitching to investors?", "Shark Tank", []string{"The Apprentice", "Undercover Boss", "The Profit"}, "reality_tv", model.DifficultyMedium),
		q("reality-12", "What is the prize on 'The Amazing Race'?", "1 million dollars", []string{"500,000 dollars", "100,000 dollars", "A trip around the world"}, "reality_tv", model.DifficultyMedium),
		q("reality-13", "What show made Simon Cowell famous in America?", "American Idol", []string{"The X Factor", "America's Got Talent", "Britain's Got Talent"}, "reality_tv", model.DifficultyMedium),
		q("reality-14", "In 'Big Brother', what do houseguests compete for?", "Head of Household", []string{"Golden Key", "Immunity Idol", "Power of Veto"}, "reality_tv", model.DifficultyMedium),
		q("reality-15", "Who hosted 'Fear Factor'?", "Joe Rogan", []string{"Jeff Probst", "Ryan Seacrest", "Chris Hardwick"}, "reality_tv", model.DifficultyMedium),
		q("reality-16", "What cooking show has 'Mystery Basket' challenges?", "Chopped", []string{"Iron Chef", "Top Chef", "MasterChef"}, "reality_tv", model.DifficultyMedium),
		q("reality-17", "What show features home renovations by Chip and Joanna Gaines?", "Fixer Upper", []string{"Property Brothers", "Love It or List It", "Flip or Flop"}, "reality_tv", model.DifficultyMedium),
		q("reality-18", "Who says 'The tribe has spoken' on 'Survivor'?", "Jeff Probst", []string{"The host", "The winner", "The jury"}, "reality_tv", model.DifficultyMedium),
		q("reality-19", "In 'The Voice', what do coaches press to choose a contestant?", "A button (to turn their chair)", []string{"A buzzer", "A bell", "A gong"}, "reality_tv", model.DifficultyEasy),
		q("reality-20", "What reality show features dance competitions?", "Dancing with the Stars", []string{"So You Think You Can Dance", "America's Best Dance Crew", "World of Dance"}, "reality_tv", model.DifficultyMedium),
	},
}
