package classifier

import "regexp"

// Structural shape of every server log line: [HH:MM:SS] [Thread/LEVEL]: message
var logLineRE = regexp.MustCompile(`^\[(\d{2}:\d{2}:\d{2})\] \[([^/]+)/(\w+)\]: (.+)$`)

// Only informational lines carry game events. Warnings and errors never do.
const infoLevel = "INFO"

// Compiled recognizers for the message part, tried in declaration order.
var (
	// Matches: "Steve has made the advancement [Monster Hunter]"
	advancementRE = regexp.MustCompile(`^(\w+) has made the advancement \[(.+)\]$`)

	// Matches: "Steve has completed the challenge [Sniper Duel]"
	challengeRE = regexp.MustCompile(`^(\w+) has completed the challenge \[(.+)\]$`)

	// Matches: "Steve has reached the goal [Sky's the Limit]"
	goalRE = regexp.MustCompile(`^(\w+) has reached the goal \[(.+)\]$`)

	// Matches: "Steve[/127.0.0.1:54321] logged in with entity id 261 at (8.5, 65.0, 8.5)"
	// Captures: (1) name, (2) address, (3) x, (4) y, (5) z
	loginRE = regexp.MustCompile(`^(\w+)\[/([^\]]+)\] logged in with entity id \d+ at \((-?[\d.]+), (-?[\d.]+), (-?[\d.]+)\)$`)

	// Matches: "Steve joined the game"
	joinRE = regexp.MustCompile(`^(\w+) joined the game$`)

	// Matches: "Steve left the game"
	leaveRE = regexp.MustCompile(`^(\w+) left the game$`)

	// Matches: "<Steve> hello everyone"
	chatRE = regexp.MustCompile(`^<(\w+)> (.+)$`)

	// Matches: `Done (18.244s)! For help, type "help"`
	serverStartRE = regexp.MustCompile(`^Done \(([\d.]+)s\)! For help, type "help"$`)
)

// deathKeywords are the known vanilla death message phrases. Death messages
// have no fixed grammar; the player name is the literal prefix before one of
// these phrases. Scan order matters: the first keyword found as a substring
// wins, and some keywords are substrings of others ("died" vs "died because
// of"), so the chosen match depends on this declaration order.
// Full list: https://minecraft.wiki/w/Death_messages
var deathKeywords = []string{
	"was shot by", "was pummeled by", "was pricked to death",
	"walked into a cactus", "drowned", "experienced kinetic energy",
	"blew up", "was blown up by", "was killed by", "hit the ground too hard",
	"fell from a high place", "fell off", "fell while", "was squashed by",
	"was fireballed by", "was killed trying to hurt",
	"walked into fire", "went up in flames", "burned to death",
	"was burnt to a crisp", "tried to swim in lava",
	"suffocated in a wall", "was squished",
	"starved to death", "was poked to death by",
	"was impaled on a stalagmite", "was skewered by",
	"withered away", "was stung to death",
	"was slain by", "was killed by",
	"died", "was doomed to fall",
}
