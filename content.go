package main

// Category is a project category. CategoryAll is the filter pseudo-category.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryFullstack Category = "fullstack"
	CategoryBackend   Category = "backend"
)

// Filters lists the filter buttons in display order.
var Filters = []Category{CategoryAll, CategoryFullstack, CategoryBackend}

type SocialLink struct {
	Name       string
	Icon       Icon
	URL        string
	Color      string
	HoverColor string
}

type Project struct {
	Title       string
	Category    Category
	Tech        []string
	Description string
	Features    []string
	Gradient    string
	Date        string
	Link        string
}

type SkillGroup struct {
	Category string
	Skills   []string
}

type Achievement struct {
	Title string
	Value string
	Icon  string
}

type NavItem struct {
	ID    string
	Label string
	Icon  Icon
}

type Role struct {
	Title   string
	Period  string
	Bullets []string
}

type Profile struct {
	Name     string
	Initials string
	Tagline  string
	Summary  string
	Email    string
	GitHub   string
	LinkedIn string
	Handle   string
	Footer   string
}

var owner = Profile{
	Name:     "Yogesh Palve",
	Initials: "YP",
	Tagline:  "Computer Engineering Student @ VJTI",
	Summary:  "Full-stack developer passionate about building scalable web applications with modern technologies. CGPA: 8.06",
	Email:    "yogeshpalve037@gmail.com",
	GitHub:   "https://github.com/yogesh-palve",
	LinkedIn: "https://www.linkedin.com/in/yogeshpalve37",
	Handle:   "yogesh-palve",
	Footer:   "© 2025 Yogesh Palve. Built with Go, Gin & HTMX following HCI principles.",
}

var socialLinks = []SocialLink{
	{
		Name:       "CodeTube",
		Icon:       IconYoutube,
		URL:        "https://codetubeapp.vercel.app/",
		Color:      "from-red-500 to-red-600",
		HoverColor: "hover:border-red-500/50",
	},
	{
		Name:       "ChirpSpace",
		Icon:       IconTwitter,
		URL:        "https://chirpspaceapp.vercel.app/",
		Color:      "from-blue-400 to-blue-500",
		HoverColor: "hover:border-blue-500/50",
	},
	{
		Name:       "LinkedIn",
		Icon:       IconLinkedin,
		URL:        "https://linkedinapp.vercel.app/",
		Color:      "from-blue-600 to-blue-700",
		HoverColor: "hover:border-blue-600/50",
	},
}

var projects = []Project{
	{
		Title:       "CareConnect",
		Category:    CategoryFullstack,
		Tech:        []string{"React", "Tailwind CSS", "REST API"},
		Description: "Doctor appointment platform with role-based access for Admins, Doctors, and Users",
		Features:    []string{"Real-time availability", "Appointment tracking", "Search & filtering"},
		Gradient:    "from-blue-500 to-cyan-500",
		Date:        "Feb 2025",
		Link:        "https://github.com/KaranShah1911/CareConnect",
	},
	{
		Title:       "SafarMitra",
		Category:    CategoryFullstack,
		Tech:        []string{"React", "Tailwind CSS", "Axios"},
		Description: "Taxi pooling platform connecting riders with room-based matching",
		Features:    []string{"Dynamic ride views", "Driver allocation", "Real-time updates"},
		Gradient:    "from-purple-500 to-pink-500",
		Date:        "Dec 2024",
		Link:        "https://github.com/sahilwaje23/SafarMitra",
	},
	{
		Title:       "Blogify",
		Category:    CategoryBackend,
		Tech:        []string{"Node.js", "Express", "MongoDB", "EJS"},
		Description: "Full-stack blog application with server-side rendering",
		Features:    []string{"JWT authentication", "Comment system", "Dynamic templates"},
		Gradient:    "from-green-500 to-emerald-500",
		Date:        "Oct 2025",
		Link:        "https://github.com/Yogesh-Palve/blogify",
	},
}

var skillGroups = []SkillGroup{
	{Category: "languages", Skills: []string{"C++", "JavaScript"}},
	{Category: "frontend", Skills: []string{"React.js", "Tailwind CSS", "HTML5", "CSS3"}},
	{Category: "backend", Skills: []string{"Node.js", "Express.js"}},
	{Category: "database", Skills: []string{"MongoDB", "MySQL"}},
	{Category: "tools", Skills: []string{"Git", "GitHub", "VS Code", "Postman"}},
}

var coursework = []string{
	"Data Structures", "OOP", "DBMS", "Operating Systems", "Algorithm Design", "Automata Theory",
}

var achievements = []Achievement{
	{Title: "LeetCode Rating", Value: "1611", Icon: "🏆"},
	{Title: "CodeChef 2★", Value: "1495", Icon: "⭐"},
	{Title: "Travelling Coder", Value: "4th Place", Icon: "🥈"},
	{Title: "Grid of Doom", Value: "6th Place", Icon: "🎯"},
	{Title: "Code Busters", Value: "12th Place", Icon: "💻"},
}

var mentorship = Role{
	Title:  "Community of Coders - Mentor",
	Period: "Feb 2025 – Present | VJTI",
	Bullets: []string{
		"Mentored junior undergraduates in Web Genesis Program focusing on HTML, CSS, and React",
		"Guiding a team of 4 students in developing MERN stack projects under Inheritance Program",
	},
}

var navItems = []NavItem{
	{ID: "home", Label: "Home", Icon: IconUser},
	{ID: "projects", Label: "Projects", Icon: IconCode},
	{ID: "skills", Label: "Skills", Icon: IconTerminal},
	{ID: "achievements", Label: "Achievements", Icon: IconAward},
	{ID: "contact", Label: "Contact", Icon: IconMail},
}

// Catalog accessors hand out copies so nothing can mutate the inline data.

func SocialLinks() []SocialLink { return append([]SocialLink(nil), socialLinks...) }

func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Tech = append([]string(nil), p.Tech...)
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

func SkillGroups() []SkillGroup {
	out := make([]SkillGroup, len(skillGroups))
	for i, g := range skillGroups {
		out[i] = SkillGroup{Category: g.Category, Skills: append([]string(nil), g.Skills...)}
	}
	return out
}

func Achievements() []Achievement { return append([]Achievement(nil), achievements...) }

func NavItems() []NavItem { return append([]NavItem(nil), navItems...) }

func Coursework() []string { return append([]string(nil), coursework...) }

func Mentorship() Role {
	r := mentorship
	r.Bullets = append([]string(nil), r.Bullets...)
	return r
}

func Owner() Profile { return owner }

func (p Profile) MailTo() string { return "mailto:" + p.Email }

func findSocial(name string) (SocialLink, bool) {
	for _, s := range socialLinks {
		if s.Name == name {
			return s, true
		}
	}
	return SocialLink{}, false
}
