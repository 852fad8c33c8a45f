package store

import "mentorpath/backend/models"

// DefaultCatalog is the course set shipped with a fresh install.
func DefaultCatalog() []models.Course {
	return []models.Course{
		{
			ID:          "python-for-everybody",
			Title:       "Python for Everybody",
			Description: "Programming fundamentals with Python, from variables to web data.",
			Platform:    "Coursera",
			Duration:    "8 weeks",
			Price:       "Free",
			IsPaid:      false,
			Rating:      4.8,
			URL:         "https://www.coursera.org/specializations/python",
			Level:       models.LevelBeginner,
			Topics:      []string{"Python", "Programming", "Data Structures"},
		},
		{
			ID:          "web-dev-bootcamp",
			Title:       "The Web Developer Bootcamp",
			Description: "HTML, CSS, JavaScript, Node and everything needed to build full-stack apps.",
			Platform:    "Udemy",
			Duration:    "64 hours",
			Price:       "$59.99",
			IsPaid:      true,
			Rating:      4.7,
			URL:         "https://www.udemy.com/course/the-web-developer-bootcamp",
			Level:       models.LevelAllLevels,
			Topics:      []string{"HTML", "CSS", "JavaScript", "Node.js", "Web Development"},
		},
		{
			ID:          "cs50x",
			Title:       "CS50's Introduction to Computer Science",
			Description: "Harvard's entry course: C, Python, SQL, algorithms and problem solving.",
			Platform:    "edX",
			Duration:    "12 weeks",
			Price:       "Free",
			IsPaid:      false,
			Rating:      4.9,
			URL:         "https://www.edx.org/course/cs50s-introduction-to-computer-science",
			Level:       models.LevelBeginner,
			Topics:      []string{"Computer Science", "C", "Python", "Algorithms", "SQL"},
		},
		{
			ID:          "ml-specialization",
			Title:       "Machine Learning Specialization",
			Description: "Supervised learning, neural networks and practical ML workflows.",
			Platform:    "Coursera",
			Duration:    "3 months",
			Price:       "$49/month",
			IsPaid:      true,
			Rating:      4.9,
			URL:         "https://www.coursera.org/specializations/machine-learning-introduction",
			Level:       models.LevelIntermediate,
			Topics:      []string{"Machine Learning", "Python", "Neural Networks", "Data Science"},
		},
		{
			ID:          "responsive-web-design",
			Title:       "Responsive Web Design Certification",
			Description: "Hands-on HTML and CSS projects building accessible responsive pages.",
			Platform:    "freeCodeCamp",
			Duration:    "300 hours",
			Price:       "Free",
			IsPaid:      false,
			Rating:      4.6,
			URL:         "https://www.freecodecamp.org/learn/2022/responsive-web-design",
			Level:       models.LevelBeginner,
			Topics:      []string{"HTML", "CSS", "Responsive Design", "Accessibility"},
		},
		{
			ID:          "react-complete-guide",
			Title:       "React - The Complete Guide",
			Description: "Hooks, routing, Redux and testing in modern React applications.",
			Platform:    "Udemy",
			Duration:    "68 hours",
			Price:       "$69.99",
			IsPaid:      true,
			Rating:      4.6,
			URL:         "https://www.udemy.com/course/react-the-complete-guide-incl-redux",
			Level:       models.LevelIntermediate,
			Topics:      []string{"React", "JavaScript", "Redux", "Web Development"},
		},
		{
			ID:          "aws-cloud-practitioner",
			Title:       "AWS Certified Cloud Practitioner",
			Description: "Cloud concepts, core AWS services, pricing and the certification exam.",
			Platform:    "Pluralsight",
			Duration:    "14 hours",
			Price:       "$29/month",
			IsPaid:      true,
			Rating:      4.5,
			URL:         "https://www.pluralsight.com/paths/aws-certified-cloud-practitioner-clf-c02",
			Level:       models.LevelBeginner,
			Topics:      []string{"AWS", "Cloud Computing", "DevOps"},
		},
		{
			ID:          "sql-for-data-science",
			Title:       "SQL for Data Science",
			Description: "Query writing, joins, aggregation and data shaping for analysis.",
			Platform:    "Coursera",
			Duration:    "4 weeks",
			Price:       "Free",
			IsPaid:      false,
			Rating:      4.6,
			URL:         "https://www.coursera.org/learn/sql-for-data-science",
			Level:       models.LevelBeginner,
			Topics:      []string{"SQL", "Data Science", "Databases"},
		},
		{
			ID:          "deep-learning-advanced",
			Title:       "Advanced Deep Learning with TensorFlow",
			Description: "Custom training loops, generative models and model deployment.",
			Platform:    "Coursera",
			Duration:    "5 months",
			Price:       "$49/month",
			IsPaid:      true,
			Rating:      4.7,
			URL:         "https://www.coursera.org/specializations/tensorflow-advanced-techniques",
			Level:       models.LevelAdvanced,
			Topics:      []string{"Deep Learning", "TensorFlow", "Machine Learning", "Python"},
		},
		{
			ID:          "ux-design-foundations",
			Title:       "Google UX Design Certificate",
			Description: "User research, wireframing, prototyping and portfolio projects.",
			Platform:    "Coursera",
			Duration:    "6 months",
			Price:       "$39/month",
			IsPaid:      true,
			Rating:      4.8,
			URL:         "https://www.coursera.org/professional-certificates/google-ux-design",
			Level:       models.LevelBeginner,
			Topics:      []string{"UX Design", "Figma", "Prototyping", "User Research"},
		},
		{
			ID:          "js-algorithms",
			Title:       "JavaScript Algorithms and Data Structures",
			Description: "ES6, recursion, functional programming and classic algorithm drills.",
			Platform:    "freeCodeCamp",
			Duration:    "300 hours",
			Price:       "Free",
			IsPaid:      false,
			Rating:      4.7,
			URL:         "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures",
			Level:       models.LevelIntermediate,
			Topics:      []string{"JavaScript", "Algorithms", "Data Structures"},
		},
		{
			ID:          "kubernetes-in-depth",
			Title:       "Certified Kubernetes Administrator Course",
			Description: "Cluster architecture, scheduling, networking and troubleshooting.",
			Platform:    "Udemy",
			Duration:    "22 hours",
			Price:       "$79.99",
			IsPaid:      true,
			Rating:      4.7,
			URL:         "https://www.udemy.com/course/certified-kubernetes-administrator-with-practice-tests",
			Level:       models.LevelAdvanced,
			Topics:      []string{"Kubernetes", "DevOps", "Docker", "Cloud Computing"},
		},
		{
			ID:          "intro-to-statistics",
			Title:       "Introduction to Statistics",
			Description: "Descriptive statistics, probability and inference for data work.",
			Platform:    "Khan Academy",
			Duration:    "self-paced",
			Price:       "Free",
			IsPaid:      false,
			Rating:      4.4,
			URL:         "https://www.khanacademy.org/math/statistics-probability",
			Level:       models.LevelAllLevels,
			Topics:      []string{"Statistics", "Probability", "Data Science", "Math"},
		},
		{
			ID:          "go-developer-path",
			Title:       "Go: The Complete Developer's Guide",
			Description: "Go syntax, concurrency patterns and production service structure.",
			Platform:    "Udemy",
			Duration:    "9 hours",
			Price:       "$49.99",
			IsPaid:      true,
			Rating:      4.6,
			URL:         "https://www.udemy.com/course/go-the-complete-developers-guide",
			Level:       models.LevelIntermediate,
			Topics:      []string{"Go", "Programming", "Concurrency", "Backend Development"},
		},
	}
}
