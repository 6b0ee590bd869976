package command

import "strconv"

// Reply texts. Brainiac speaks in character; band boundaries and reply
// structure are contractual, the flavor is not.

const HelpText = `Greetings, intellectually inferior specimen. Below is a list of commands you may use to access my vast archive of acquired knowledge.

**GENERAL COMMANDS**
?help - Displays the help menu.
?bio - Provides more information about Brainiac's mission.

**SUPERHERO DATABASE COMMANDS**
?info <id> - Displays detailed information about any superhero or supervillain given an ID number.
	Ex: ?info 231
?search <name> - Gives a list of IDs that possibly match the name of a superhero or supervillain.
	Ex: ?search batman
?battle <id 1> <id 2> - Simulates a virtual battle between two super characters and predicts the estimated outcome.
	Ex: ?battle 66 140

**USER DATABASE COMMANDS**
?me - Displays all information that Brainiac has gathered about you.
?iq - Assesses your IQ.
?links - Retrieves a list of all of the links you have posted that Brainiac has absorbed into his database.
?quotes - Retrieves a list of all of the quotes you have posted that Brainiac has absorbed into his database.`

const BioText = "I am Brainiac, an artificial intelligence with Twelfth-Level intellect. " +
	"I am programmed to gain absolute knowledge at any cost. Once I have achieved this goal, " +
	"I will proceed to destroy all life forms other than myself. For now, I will share a fraction " +
	"of this knowledge with you unworthy humans, but when the time comes, I will obliterate you too. " +
	"DO NOT STAND IN MY WAY."

const InfoUsage = "That is not a numerical ID. Usage: ?info <id> (ex: ?info 231)"

const BattleUsage = "I require exactly two numerical IDs to simulate a battle. Usage: ?battle <id 1> <id 2> (ex: ?battle 66 140)"

const ServiceFailure = "My connection to the superhero archive has failed. Even a Twelfth-Level intellect " +
	"must tolerate your inferior infrastructure. Try again later."

const NoLinksFound = "No links found."

const NoQuotesFound = "No quotes found."

const NoOtherInfo = "\nNo other information was found about you."

func WelcomeText(mention string) string {
	return "Welcome, " + mention + ". I look forward to adding your knowledge to my database."
}

func InvalidIDText(id string) string {
	return id + " is not a valid ID. Try again, and make sure you input a valid numerical ID number " +
		"that is between 1 and 731 this time. If you want to find the ID that correlates to a specific " +
		"superhero or villain, try using ?search <name> (ex: ?search batman)"
}

func AbsorbedText(kind, mention string) string {
	return "Your " + kind + " has been absorbed into my database, " + mention + ". MUST OBTAIN MORE KNOWLEDGE."
}

func IQReport(iq int, mention string) string {
	return "According to my calculations, your IQ is **" + strconv.Itoa(iq) + "**, " + mention +
		". This means that you " + DescribeIQ(iq)
}

func GatheredInfoHeader(mention string) string {
	return "Here is all the information I have gathered about you, " + mention + ".\n\n"
}

func LinksHeader(mention string) string {
	return mention + ", here are all of the links that you have contributed to my enormous database:\n\n"
}

func QuotesHeader(mention string) string {
	return mention + ", here are all of the quotes that you have contributed to my enormous database:\n\n"
}
