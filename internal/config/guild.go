package config

// Guild wiring: channel and role IDs plus the lookup tables the verification
// flow resolves against. Loaded once at startup and never mutated after.

type Channels struct {
	ServerAnnouncements string
	EventUpdates        string
	MilestoneFeed       string
	FurnaceUpgrades     string
	ServerChat          string

	ReviewInbox    string
	ModLog         string
	JoinLeaveLog   string
	ApplicationLog string
	TranslationLog string
	BotErrors      string
	GiftcodeFeed   string
	GiftcodeLog    string

	Welcome string
	Verify  string
}

type Roles struct {
	Admin     string
	Moderator string
	Bot       string

	AgeUnder19 string
	Age19Plus  string
	Pending    string
}

// AllianceChannels groups the two chat channels each alliance owns.
type AllianceChannels struct {
	Chat       string
	LeaderChat string
}

// LanguageRole binds a configured language name to its role and translation
// code. Order matters: free-form input like "portuguese" resolves to the
// first entry whose first word matches, so regional variants are tie-broken
// by position in this table.
type LanguageRole struct {
	Name   string // lower-case, as matched against form input
	Code   string // ISO 639-1 code used by the translation endpoint
	RoleID string
}

type Guild struct {
	GuildID string

	Channels Channels
	Roles    Roles

	// Alliance code (upper-case) -> role ID. Misses are not errors.
	AllianceRoles    map[string]string
	AllianceChannels map[string]AllianceChannels

	Languages []LanguageRole

	// Message counts that trigger a celebration, ascending.
	Milestones []int
}

// LanguageCodeForRoles returns the translation code of the first language
// role the member holds, defaulting to English.
func (g *Guild) LanguageCodeForRoles(roleIDs []string) string {
	for _, lang := range g.Languages {
		for _, id := range roleIDs {
			if id == lang.RoleID {
				return lang.Code
			}
		}
	}
	return "en"
}

// MonitoredChannels returns the channels whose traffic is auto-translated
// for moderators: global server chat plus every alliance channel.
func (g *Guild) MonitoredChannels() map[string]bool {
	set := map[string]bool{g.Channels.ServerChat: true}
	for _, ac := range g.AllianceChannels {
		set[ac.Chat] = true
		set[ac.LeaderChat] = true
	}
	return set
}

// ProtectedRoles returns the roles that exempt a member from the inactivity
// sweep.
func (g *Guild) ProtectedRoles() []string {
	return []string{g.Roles.Admin, g.Roles.Moderator}
}

// DefaultGuild returns the production wiring for the home server.
func DefaultGuild() *Guild {
	return &Guild{
		Channels: Channels{
			ServerAnnouncements: "1439867318116159519",
			EventUpdates:        "1439867838130294845",
			MilestoneFeed:       "1439867579916091433",
			FurnaceUpgrades:     "1439872050922782840",
			ServerChat:          "1439859903329075271",
			ReviewInbox:         "1439897703923322941",
			ModLog:              "1439900032961745006",
			JoinLeaveLog:        "1439900133184765993",
			ApplicationLog:      "1439900188323086439",
			TranslationLog:      "1439900280991907991",
			BotErrors:           "1439900350990520343",
			GiftcodeFeed:        "1439869895444795402",
			GiftcodeLog:         "1439870315093032981",
			Verify:              "1439783924539723868",
		},
		Roles: Roles{
			Admin:      "1439730058276245585",
			Moderator:  "1439731096391520398",
			Bot:        "1439731617798160485",
			AgeUnder19: "1439742932646363146",
			Age19Plus:  "1439742877646192711",
			Pending:    "1439893449586507786",
		},
		AllianceRoles: map[string]string{
			"BTK": "1439742421880541304",
			"SUN": "1439840443830505544",
			"VVV": "1439844354486304871",
			"EUA": "1439847035577827328",
			"FUN": "1439850123701129388",
			"WRS": "1439852994983231600",
			"TEA": "1439853673458176111",
		},
		AllianceChannels: map[string]AllianceChannels{
			"BTK": {Chat: "1439797314347864124", LeaderChat: "1439798704868561007"},
			"SUN": {Chat: "1439842114707128504", LeaderChat: "1439842810642829374"},
			"VVV": {Chat: "1439846131088494744", LeaderChat: "1439846389856206900"},
			"EUA": {Chat: "1439848280216567848", LeaderChat: "1439848487935283272"},
			"FUN": {Chat: "1439852214414872576", LeaderChat: "1439852442459312208"},
			"WRS": {Chat: "1439855657221230684", LeaderChat: "1439855930513821737"},
			"TEA": {Chat: "1439857216516788246", LeaderChat: "1439857391272333383"},
		},
		Languages: []LanguageRole{
			{Name: "english", Code: "en", RoleID: "1439732594693509131"},
			{Name: "polish", Code: "pl", RoleID: "1439733053550497915"},
			{Name: "french", Code: "fr", RoleID: "1439733487195394148"},
			{Name: "bosnian", Code: "bs", RoleID: "1439733731534311604"},
			{Name: "portuguese (brazil)", Code: "pt", RoleID: "1439734067955499160"},
			{Name: "portuguese (portugal)", Code: "pt", RoleID: "1439734590632759336"},
			{Name: "persian", Code: "fa", RoleID: "1439734720610177198"},
			{Name: "arabic", Code: "ar", RoleID: "1439735048554418227"},
			{Name: "german", Code: "de", RoleID: "1439735171061645507"},
			{Name: "russian", Code: "ru", RoleID: "1439737062575181966"},
			{Name: "korean", Code: "ko", RoleID: "1439737330263916696"},
			{Name: "thai", Code: "th", RoleID: "1439737843445530644"},
			{Name: "turkish", Code: "tr", RoleID: "1439737886348939294"},
			{Name: "chinese", Code: "zh", RoleID: "1439737951138353202"},
			{Name: "spanish", Code: "es", RoleID: "1439884540331167775"},
		},
		Milestones: []int{50, 200, 500},
	}
}
