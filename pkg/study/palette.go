package study

// FolderColor is one named palette entry. Folders reference entries by name;
// unknown names fall back to the default entry rather than erroring.
type FolderColor struct {
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// FolderIcon is one catalog glyph, referenced by name.
type FolderIcon struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// FolderColors is the fixed palette. The first entry is the fallback.
var FolderColors = []FolderColor{
	{Name: "Blue", Primary: "#007AFF", Secondary: "#E3F2FD", Accent: "#1976D2"},
	{Name: "Purple", Primary: "#AF52DE", Secondary: "#F3E5F5", Accent: "#7B1FA2"},
	{Name: "Pink", Primary: "#FF2D92", Secondary: "#FCE4EC", Accent: "#C2185B"},
	{Name: "Red", Primary: "#FF3B30", Secondary: "#FFEBEE", Accent: "#D32F2F"},
	{Name: "Orange", Primary: "#FF9500", Secondary: "#FFF3E0", Accent: "#F57C00"},
	{Name: "Yellow", Primary: "#FFCC02", Secondary: "#FFFDE7", Accent: "#F9A825"},
	{Name: "Green", Primary: "#34C759", Secondary: "#E8F5E8", Accent: "#388E3C"},
	{Name: "Teal", Primary: "#5AC8FA", Secondary: "#E0F2F1", Accent: "#00796B"},
	{Name: "Indigo", Primary: "#5856D6", Secondary: "#E8EAF6", Accent: "#303F9F"},
	{Name: "Gray", Primary: "#8E8E93", Secondary: "#F5F5F5", Accent: "#616161"},
}

// FolderIcons is the glyph catalog offered when creating folders.
var FolderIcons = []FolderIcon{
	// Academic
	{Name: "Books", Icon: "📚", Category: "Academic"},
	{Name: "Science", Icon: "🔬", Category: "Academic"},
	{Name: "Math", Icon: "📐", Category: "Academic"},
	{Name: "History", Icon: "🏛️", Category: "Academic"},
	{Name: "Language", Icon: "🗣️", Category: "Academic"},
	{Name: "Research", Icon: "🔍", Category: "Academic"},
	{Name: "Notes", Icon: "📝", Category: "Academic"},
	{Name: "Study", Icon: "🎓", Category: "Academic"},

	// Creative
	{Name: "Art", Icon: "🎨", Category: "Creative"},
	{Name: "Music", Icon: "🎵", Category: "Creative"},
	{Name: "Video", Icon: "🎬", Category: "Creative"},
	{Name: "Design", Icon: "✨", Category: "Creative"},
	{Name: "Photography", Icon: "📸", Category: "Creative"},

	// Tech
	{Name: "Code", Icon: "💻", Category: "Tech"},
	{Name: "AI", Icon: "🤖", Category: "Tech"},
	{Name: "Data", Icon: "📊", Category: "Tech"},
	{Name: "Security", Icon: "🔒", Category: "Tech"},

	// Lifestyle
	{Name: "Health", Icon: "💪", Category: "Lifestyle"},
	{Name: "Cooking", Icon: "👨‍🍳", Category: "Lifestyle"},
	{Name: "Travel", Icon: "✈️", Category: "Lifestyle"},
	{Name: "Sports", Icon: "⚽", Category: "Lifestyle"},

	// Business
	{Name: "Business", Icon: "💼", Category: "Business"},
	{Name: "Finance", Icon: "💰", Category: "Business"},
	{Name: "Marketing", Icon: "📈", Category: "Business"},
	{Name: "Startup", Icon: "🚀", Category: "Business"},
}

// DefaultIconGlyph is used when an icon name has no catalog entry.
const DefaultIconGlyph = "📁"

// ColorByName resolves a palette entry by name, falling back to the default
// entry for unknown names. Never an error.
func ColorByName(name string) FolderColor {
	for _, c := range FolderColors {
		if c.Name == name {
			return c
		}
	}
	return FolderColors[0]
}

// IconGlyph resolves an icon name to its glyph, falling back to the plain
// folder glyph for unknown names. Seed folders store glyphs directly; those
// pass through unchanged.
func IconGlyph(name string) string {
	for _, i := range FolderIcons {
		if i.Name == name || i.Icon == name {
			return i.Icon
		}
	}
	for _, f := range DefaultFolders {
		if f.Icon == name {
			return name
		}
	}
	return DefaultIconGlyph
}
