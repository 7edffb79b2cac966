package keyword

import "edutrack-advisor-be/pkg/advisor/capability"

// The lexicon is a static multi-map from keyword to capability, built once at
// init. Matching is case-insensitive substring containment, so entries are
// stored lowercase.

var academicKeywords = []string{
	// Core academic terms
	"academic", "academics", "education", "educational", "learning", "study", "studying", "studies",
	"school", "college", "university", "curriculum", "syllabus", "course", "courses", "subject", "subjects",
	"class", "classes", "lecture", "lectures", "tutorial", "tutorials", "seminar", "seminars",
	// Grades and assessment
	"grade", "grades", "grading", "gpa", "cgpa", "marks", "score", "scores", "scoring", "result", "results",
	"exam", "exams", "examination", "test", "tests", "testing", "quiz", "quizzes", "assessment", "assessments",
	"midterm", "finals", "final exam", "evaluation", "report card", "transcript", "diploma",
	// Study methods and skills
	"homework", "assignment", "assignments", "project", "projects", "research", "thesis", "dissertation",
	"essay", "essays", "paper", "papers", "presentation", "presentations",
	"note-taking", "notebook", "textbook", "textbooks", "reading", "revision",
	// STEM subjects
	"mathematics", "math", "maths", "algebra", "geometry", "calculus", "statistics", "probability",
	"physics", "chemistry", "biology", "science", "sciences", "engineering",
	"computer science", "programming", "coding", "algorithms", "data structures",
	"dsa", "competitive programming", "machine learning", "artificial intelligence",
	// Liberal arts
	"english", "literature", "writing", "grammar", "vocabulary", "history", "geography", "social studies",
	"psychology", "sociology", "philosophy", "economics", "political science", "linguistics",
	// Academic challenges
	"difficult", "difficulty", "struggling", "confused", "confusion",
	"comprehension", "concept", "concepts", "theory", "theories", "knowledge gap",
	// Academic support
	"tutor", "tutoring", "professor", "instructor", "faculty",
	"study group", "peer support", "doubt", "doubts", "clarification",
	// Time management
	"timetable", "deadline", "deadlines", "due date", "submission",
	"study plan", "study schedule", "procrastination", "concentration",
	// Academic goals
	"scholarship", "honors", "distinction", "merit", "ranking",
}

var careerKeywords = []string{
	// Core career terms
	"career", "careers", "job", "jobs", "employment", "profession", "professional",
	"occupation", "vocation", "industry", "sector", "position",
	// Job search
	"job search", "job hunting", "application", "applications", "resume", "cv", "curriculum vitae",
	"cover letter", "portfolio", "interview", "interviews", "interviewing", "job interview",
	"hiring", "recruitment", "recruiter", "human resources", "placement",
	// Technology careers
	"software developer", "programmer", "web developer", "full stack",
	"frontend", "backend", "data scientist", "data analyst", "data engineer",
	"cybersecurity", "devops", "product manager", "project manager", "tech lead",
	// Business careers
	"business analyst", "consultant", "consulting", "management", "manager", "executive",
	"entrepreneur", "startup", "business development", "sales", "marketing",
	"finance", "accounting", "investment banking", "financial analyst",
	// Career development
	"career development", "career growth", "advancement", "promotion", "career path", "career planning",
	"professional development", "skill development", "upskilling", "reskilling",
	"certification", "certifications", "workshop", "workshops",
	// Work environment
	"remote work", "work from home", "freelance", "freelancer", "contractor",
	"part-time", "full-time", "internship", "apprenticeship", "corporate",
	// Career skills
	"hard skills", "soft skills", "technical skills", "communication skills",
	"leadership", "teamwork", "problem solving",
	// Salary and benefits
	"salary", "wage", "compensation", "benefits", "bonus", "incentive",
	"raise", "increment", "negotiation", "equity", "stock options",
	// Networking
	"networking", "connections", "mentorship", "linkedin", "referral",
	// Career challenges
	"unemployment", "layoff", "fired", "terminated", "job loss", "career crisis",
	"plateau", "rejection",
}

var performanceKeywords = []string{
	// Core performance terms
	"performance", "improve", "improvement", "enhance", "enhancement", "optimize",
	"optimization", "progress", "progression", "growth", "upgrade",
	"boost", "maximize", "excel", "excellence", "achieve", "achievement", "accomplish",
	// Measurement
	"metric", "metrics", "kpi", "indicator", "benchmark",
	"goal", "goals", "target", "targets", "objective", "objectives",
	"outcome", "output", "productivity", "efficiency", "effectiveness",
	// Performance issues
	"weak", "weakness", "weaknesses", "obstacle", "barrier", "limitation", "bottleneck",
	"deficiency", "shortcoming", "setback",
	// Skill improvement
	"skill building", "practice", "drill", "coaching", "mentoring",
	"feedback", "critique",
	// Time management performance
	"time management", "organization", "planning", "scheduling",
	"prioritizing", "multitasking", "focus", "mindfulness",
	// Mental performance
	"cognitive", "memory", "recall", "retention", "alertness",
	"critical thinking", "creativity",
	// Performance strategies
	"strategy", "method", "technique", "approach", "routine",
	"habit", "habits", "discipline", "framework", "best practice",
	// Tracking
	"track", "tracking", "monitor", "monitoring", "progress report",
	"dashboard", "review",
	// Mindset
	"mindset", "attitude", "confidence", "self-confidence", "self-esteem",
	"motivated", "determination", "commitment", "dedication",
	// Competition
	"compete", "competition", "competitive", "comparison", "rank", "standing",
}

var welfareKeywords = []string{
	// Core welfare terms
	"welfare", "wellbeing", "well-being", "wellness", "health", "mental health", "emotional health",
	"psychological", "balance", "harmony", "contentment", "fulfillment", "happiness",
	// Mental health conditions
	"stress", "anxiety", "depression", "panic", "worry", "fear", "phobia", "trauma",
	"burnout", "overwhelm", "exhaustion", "fatigue", "insomnia", "mood",
	"eating disorder", "addiction", "self-harm",
	// Emotional states
	"emotion", "emotions", "emotional", "feeling", "feelings", "sad", "sadness", "anger",
	"frustrated", "frustration", "disappointed", "lonely", "loneliness",
	"scared", "afraid", "nervous", "worried", "overwhelmed",
	// Stress and pressure
	"pressure", "tension", "strain", "burden", "overwhelming", "too much", "can't cope",
	"breaking point", "tolerance", "resilience",
	// Coping and support
	"cope", "coping", "deal with", "overcome",
	"counseling", "therapy", "therapist", "counselor", "psychologist", "psychiatrist",
	// Self-care
	"self-care", "self-love", "self-compassion", "meditation",
	"relaxation", "breathing", "yoga", "sleep", "rest", "downtime",
	// Relationships
	"relationship", "relationships", "family", "friends", "isolation", "alone",
	"support system", "conflict", "bullying",
	// Academic stress
	"academic stress", "study stress", "exam anxiety", "test anxiety", "performance anxiety",
	"perfectionism", "fear of failure", "imposter syndrome", "workload", "deadline stress",
	// Work-life balance
	"work-life balance", "boundaries", "overwork", "workaholic", "job stress",
	// Crisis
	"crisis", "emergency", "desperate", "hopeless", "suicidal", "hotline",
	// Recovery
	"recovery", "healing", "treatment", "medication", "hope", "optimism",
	// Positive psychology
	"gratitude", "compassion", "kindness", "empathy", "forgiveness", "calm",
	// Motivation
	"motivation", "demotivated", "unmotivated",
}

// Broader cue sets, applied as a second pass after the main lexicon. These
// are the high-signal words the original routing logic special-cased.
var broadCues = map[capability.Capability][]string{
	capability.Academic:    {"grade", "gpa", "cgpa", "academic", "study", "exam", "course", "subject", "dsa", "algorithm", "marks", "score"},
	capability.Career:      {"career", "job", "internship", "analyst", "data analyst", "profession", "work", "interview"},
	capability.Performance: {"performance", "improve", "weak", "better", "progress", "skills", "enhancement"},
	capability.Welfare:     {"stress", "anxiety", "mental", "health", "wellbeing", "welfare", "motivation"},
}

var lexicon map[string][]capability.Capability

func init() {
	lexicon = make(map[string][]capability.Capability)
	add := func(words []string, tag capability.Capability) {
		for _, w := range words {
			lexicon[w] = appendTag(lexicon[w], tag)
		}
	}
	add(academicKeywords, capability.Academic)
	add(careerKeywords, capability.Career)
	add(performanceKeywords, capability.Performance)
	add(welfareKeywords, capability.Welfare)
}

func appendTag(tags []capability.Capability, tag capability.Capability) []capability.Capability {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}
