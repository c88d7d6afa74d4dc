package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

type techSeed struct {
	name        string
	category    string
	popularity  int
	description string
}

// The fixed technology catalog. Reloading is idempotent: all rows are
// deleted and re-inserted.
var technologies = []techSeed{
	// Programming Languages
	{"JavaScript", "language", 100, "Dynamic programming language for web development"},
	{"TypeScript", "language", 95, "Typed superset of JavaScript"},
	{"Python", "language", 98, "High-level programming language for web, data science, and AI"},
	{"Java", "language", 90, "Object-oriented programming language"},
	{"Go", "language", 85, "Fast, statically typed compiled language by Google"},
	{"Rust", "language", 82, "Systems programming language focused on safety and performance"},
	{"C++", "language", 78, "General-purpose programming language"},
	{"C#", "language", 75, "Programming language developed by Microsoft"},
	{"PHP", "language", 70, "Server-side scripting language"},
	{"Ruby", "language", 65, "Dynamic, open source programming language"},
	{"Swift", "language", 68, "Programming language for iOS and macOS development"},
	{"Kotlin", "language", 72, "Modern programming language for Android development"},
	{"Dart", "language", 60, "Client-optimized language for apps on multiple platforms"},

	// Frontend Frameworks
	{"React", "framework", 100, "JavaScript library for building user interfaces"},
	{"Vue.js", "framework", 88, "Progressive JavaScript framework"},
	{"Angular", "framework", 85, "Platform for building mobile and desktop web applications"},
	{"Next.js", "framework", 92, "React framework with hybrid static & server rendering"},
	{"Nuxt.js", "framework", 75, "Vue.js framework for production"},
	{"Svelte", "framework", 78, "Cybernetically enhanced web apps"},
	{"SvelteKit", "framework", 70, "The fastest way to build svelte apps"},
	{"Astro", "framework", 65, "Build faster websites with less client-side JavaScript"},
	{"Remix", "framework", 62, "Full stack web framework focused on web standards"},

	// Backend Frameworks
	{"Node.js", "framework", 95, "JavaScript runtime built on Chrome's V8 JavaScript engine"},
	{"Express.js", "framework", 90, "Fast, unopinionated, minimalist web framework for Node.js"},
	{"Django", "framework", 85, "High-level Python Web framework"},
	{"Flask", "framework", 80, "Lightweight WSGI web application framework"},
	{"FastAPI", "framework", 88, "Modern, fast web framework for building APIs with Python"},
	{"Spring Boot", "framework", 82, "Java-based framework for creating microservices"},
	{"Laravel", "framework", 78, "PHP web application framework"},
	{"Ruby on Rails", "framework", 70, "Server-side web application framework written in Ruby"},
	{"ASP.NET Core", "framework", 75, "Cross-platform .NET framework for building modern web apps"},
	{"Gin", "framework", 65, "HTTP web framework written in Go"},
	{"Fiber", "framework", 60, "Express inspired web framework written in Go"},

	// Mobile Development
	{"React Native", "framework", 85, "Framework for building native apps using React"},
	{"Flutter", "framework", 82, "UI toolkit for building natively compiled applications"},
	{"Ionic", "framework", 65, "Cross-platform mobile app development framework"},
	{"Xamarin", "framework", 55, "Microsoft's mobile application platform"},

	// Databases
	{"PostgreSQL", "tool", 90, "Advanced open source relational database"},
	{"MySQL", "tool", 85, "Open-source relational database management system"},
	{"MongoDB", "tool", 88, "Document-oriented NoSQL database"},
	{"Redis", "tool", 82, "In-memory data structure store"},
	{"SQLite", "tool", 75, "Self-contained, serverless SQL database engine"},
	{"Elasticsearch", "tool", 70, "Distributed search and analytics engine"},
	{"Supabase", "tool", 78, "Open source Firebase alternative"},
	{"PlanetScale", "tool", 68, "MySQL-compatible serverless database platform"},

	// DevOps & Cloud
	{"Docker", "tool", 95, "Platform for developing, shipping, and running applications"},
	{"Kubernetes", "tool", 88, "Container orchestration system"},
	{"AWS", "tool", 92, "Amazon Web Services cloud platform"},
	{"Google Cloud", "tool", 80, "Google's cloud computing services"},
	{"Azure", "tool", 78, "Microsoft's cloud computing service"},
	{"Vercel", "tool", 85, "Platform for frontend frameworks and static sites"},
	{"Netlify", "tool", 75, "Platform for automating modern web projects"},
	{"Railway", "tool", 65, "Infrastructure platform for deploying applications"},
	{"Render", "tool", 62, "Cloud platform for building and running applications"},

	// Version Control & CI/CD
	{"Git", "tool", 100, "Distributed version control system"},
	{"GitHub", "tool", 98, "Web-based hosting service for Git repositories"},
	{"GitLab", "tool", 75, "Web-based DevOps lifecycle tool"},
	{"GitHub Actions", "tool", 88, "CI/CD platform that lets you automate workflows"},
	{"Jenkins", "tool", 70, "Open source automation server"},

	// Development Tools
	{"VS Code", "tool", 100, "Source-code editor made by Microsoft"},
	{"Webpack", "tool", 78, "Static module bundler for JavaScript applications"},
	{"Vite", "tool", 85, "Build tool that provides faster development experience"},
	{"ESLint", "tool", 82, "Static code analysis tool for JavaScript"},
	{"Prettier", "tool", 80, "Opinionated code formatter"},
	{"Jest", "tool", 85, "JavaScript testing framework"},
	{"Cypress", "tool", 75, "End-to-end testing framework"},
	{"Playwright", "tool", 72, "Framework for Web Testing and Automation"},

	// CSS & Styling
	{"Tailwind CSS", "framework", 88, "Utility-first CSS framework"},
	{"Bootstrap", "framework", 75, "CSS framework for responsive web design"},
	{"Sass", "tool", 70, "CSS extension language"},
	{"Styled Components", "framework", 68, "CSS-in-JS library for styling React components"},
	{"Chakra UI", "framework", 65, "Modular and accessible component library"},
	{"Material-UI", "framework", 72, "React components implementing Google's Material Design"},

	// State Management
	{"Redux", "framework", 80, "Predictable state container for JavaScript apps"},
	{"Zustand", "framework", 75, "Small, fast and scalable state management"},
	{"Recoil", "framework", 60, "Experimental state management library for React"},
	{"MobX", "framework", 58, "Simple, scalable state management through reactive programming"},

	// API & Data Fetching
	{"GraphQL", "tool", 85, "Query language and runtime for APIs"},
	{"Apollo", "framework", 75, "Comprehensive state management library for JavaScript"},
	{"Prisma", "tool", 82, "Next-generation ORM for Node.js and TypeScript"},
	{"tRPC", "framework", 78, "End-to-end typesafe APIs made easy"},
	{"Axios", "tool", 88, "Promise-based HTTP client for JavaScript"},
	{"SWR", "framework", 72, "Data fetching library for React"},
	{"React Query", "framework", 85, "Data fetching and caching library for React"},

	// Domain-Specific Technologies
	{"Machine Learning", "domain", 95, "Field of AI focused on algorithms that improve through experience"},
	{"Data Science", "domain", 90, "Field that uses scientific methods to extract insights from data"},
	{"DevOps", "domain", 88, "Practices combining software development and IT operations"},
	{"Cybersecurity", "domain", 85, "Practice of protecting systems and networks from digital attacks"},
	{"Blockchain", "domain", 70, "Distributed ledger technology"},
	{"IoT", "domain", 68, "Internet of Things - network of interconnected computing devices"},
	{"AR/VR", "domain", 65, "Augmented and Virtual Reality technologies"},
	{"Game Development", "domain", 75, "Process of creating video games"},
	{"Mobile Development", "domain", 80, "Development of applications for mobile devices"},
	{"Web Development", "domain", 95, "Development of websites and web applications"},
	{"Desktop Development", "domain", 60, "Development of applications for desktop computers"},
	{"API Development", "domain", 85, "Development of Application Programming Interfaces"},
	{"Microservices", "domain", 78, "Architectural approach to building distributed systems"},

	// AI & ML Specific
	{"TensorFlow", "framework", 85, "Open source machine learning framework"},
	{"PyTorch", "framework", 88, "Machine learning framework based on Torch library"},
	{"Scikit-learn", "framework", 80, "Machine learning library for Python"},
	{"Pandas", "framework", 82, "Data manipulation and analysis library for Python"},
	{"NumPy", "framework", 78, "Library for scientific computing with Python"},
	{"OpenAI", "tool", 90, "AI research and deployment company"},
	{"Hugging Face", "tool", 75, "Platform for machine learning and natural language processing"},
}

func main() {
	fmt.Println("Seeding database with technologies...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	// Selections reference the catalog, so they go first.
	if _, err := pool.Exec(ctx, `DELETE FROM user_technologies`); err != nil {
		log.Fatalf("cannot clear user technologies: %v", err)
	}
	if _, err := pool.Exec(ctx, `DELETE FROM technologies`); err != nil {
		log.Fatalf("cannot clear technologies: %v", err)
	}
	fmt.Println("Cleared existing technology data")

	now := time.Now().UTC()
	query := `
		INSERT INTO technologies (id, name, category, description, popularity_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, tech := range technologies {
		_, err := pool.Exec(ctx, query, uuid.New(), tech.name, tech.category, tech.description, tech.popularity, now, now)
		if err != nil {
			log.Fatalf("cannot insert technology %q: %v", tech.name, err)
		}
	}

	fmt.Printf("Created %d technologies\n", len(technologies))

	counts := map[string]int{}
	for _, tech := range technologies {
		counts[tech.category]++
	}
	for _, category := range []string{"language", "framework", "tool", "domain"} {
		fmt.Printf("   %s: %d technologies\n", category, counts[category])
	}
}
