package source

import (
	"context"
	"strings"

	"github.com/spigell/jobscout/internal/job"
)

// mock serves a fixed catalog of listings so the pipeline keeps working when
// no external source is configured.
type mock struct{}

func newMock() *mock { return &mock{} }

func (m *mock) Name() string { return "mock" }

// Fetch filters the catalog by a query substring against title and
// description. When nothing matches, the whole catalog is returned so callers
// always have data to rank.
func (m *mock) Fetch(_ context.Context, query, _ string, maxResults int) (*job.Listings, error) {
	catalog := mockCatalog()

	queryLower := strings.ToLower(query)
	filtered := &job.Listings{}
	for _, listing := range catalog.Items {
		if strings.Contains(strings.ToLower(listing.Title), queryLower) ||
			strings.Contains(strings.ToLower(listing.Description), queryLower) {
			filtered.Items = append(filtered.Items, listing)
		}
	}

	if filtered.Len() == 0 {
		filtered = catalog
	}

	filtered.Limit(maxResults)

	return filtered, nil
}

func salary(v float64) *float64 { return &v }

func mockCatalog() *job.Listings {
	return &job.Listings{Items: []*job.Listing{
		{
			ID:          "mock_1",
			Title:       "Senior Software Engineer",
			Company:     "TechCorp Inc",
			Description: "We are looking for a senior software engineer with experience in Python, FastAPI, and React. You will work on building scalable web applications and APIs. Requirements: 5+ years of experience, strong knowledge of Python, experience with cloud platforms (AWS/GCP), RESTful API design.",
			Location:    "San Francisco, CA",
			Skills:      []string{"Python", "FastAPI", "React", "AWS", "REST APIs", "Docker"},
			Remote:      true,
			SalaryMin:   salary(120000),
			SalaryMax:   salary(180000),
			URL:         "https://example.com/job/1",
			Source:      "mock",
			PostedDate:  "2025-12-10",
		},
		{
			ID:          "mock_2",
			Title:       "Data Scientist",
			Company:     "DataAnalytics Co",
			Description: "Join our data science team to build ML models and analyze large datasets. Requirements: Python, machine learning, SQL, pandas, scikit-learn. Experience with deep learning is a plus.",
			Location:    "New York, NY",
			Skills:      []string{"Python", "Machine Learning", "SQL", "Pandas", "Scikit-learn", "TensorFlow"},
			SalaryMin:   salary(100000),
			SalaryMax:   salary(150000),
			URL:         "https://example.com/job/2",
			Source:      "mock",
			PostedDate:  "2025-12-11",
		},
		{
			ID:          "mock_3",
			Title:       "Full Stack Developer",
			Company:     "WebDev Solutions",
			Description: "Looking for a full stack developer proficient in JavaScript, Node.js, React, and MongoDB. You will build modern web applications from frontend to backend.",
			Location:    "Remote",
			Skills:      []string{"JavaScript", "Node.js", "React", "MongoDB", "Express", "HTML", "CSS"},
			Remote:      true,
			SalaryMin:   salary(90000),
			SalaryMax:   salary(130000),
			URL:         "https://example.com/job/3",
			Source:      "mock",
			PostedDate:  "2025-12-09",
		},
		{
			ID:          "mock_4",
			Title:       "DevOps Engineer",
			Company:     "CloudTech Inc",
			Description: "We need a DevOps engineer to manage our cloud infrastructure. Experience with Kubernetes, Docker, CI/CD, and AWS required. You will automate deployments and ensure system reliability.",
			Location:    "Austin, TX",
			Skills:      []string{"Kubernetes", "Docker", "AWS", "CI/CD", "Python", "Terraform", "Jenkins"},
			Remote:      true,
			SalaryMin:   salary(110000),
			SalaryMax:   salary(160000),
			URL:         "https://example.com/job/4",
			Source:      "mock",
			PostedDate:  "2025-12-08",
		},
		{
			ID:          "mock_5",
			Title:       "Machine Learning Engineer",
			Company:     "AI Innovations",
			Description: "Build and deploy ML models at scale. Requirements: Python, PyTorch/TensorFlow, MLOps, cloud platforms. Experience with NLP or computer vision is preferred.",
			Location:    "Seattle, WA",
			Skills:      []string{"Python", "PyTorch", "TensorFlow", "MLOps", "Docker", "Kubernetes", "NLP"},
			Remote:      true,
			SalaryMin:   salary(130000),
			SalaryMax:   salary(190000),
			URL:         "https://example.com/job/5",
			Source:      "mock",
			PostedDate:  "2025-12-12",
		},
		{
			ID:          "mock_6",
			Title:       "Frontend Developer",
			Company:     "UI/UX Studio",
			Description: "Create beautiful and responsive user interfaces using React, TypeScript, and modern CSS. Work closely with designers to bring mockups to life.",
			Location:    "Los Angeles, CA",
			Skills:      []string{"React", "TypeScript", "CSS", "HTML", "JavaScript", "Git"},
			Remote:      true,
			SalaryMin:   salary(85000),
			SalaryMax:   salary(125000),
			URL:         "https://example.com/job/6",
			Source:      "mock",
			PostedDate:  "2025-12-13",
		},
		{
			ID:          "mock_7",
			Title:       "Backend Developer",
			Company:     "API Systems Inc",
			Description: "Build robust and scalable backend systems using Java, Spring Boot, and PostgreSQL. Experience with microservices architecture required.",
			Location:    "Chicago, IL",
			Skills:      []string{"Java", "Spring Boot", "PostgreSQL", "REST API", "Docker", "Kubernetes"},
			SalaryMin:   salary(95000),
			SalaryMax:   salary(140000),
			URL:         "https://example.com/job/7",
			Source:      "mock",
			PostedDate:  "2025-12-14",
		},
		{
			ID:          "mock_8",
			Title:       "Mobile App Developer",
			Company:     "Mobile First Inc",
			Description: "Develop cross-platform mobile applications using React Native. Experience with iOS and Android development required.",
			Location:    "Remote",
			Skills:      []string{"React Native", "JavaScript", "iOS", "Android", "Git", "REST API"},
			Remote:      true,
			SalaryMin:   salary(90000),
			SalaryMax:   salary(135000),
			URL:         "https://example.com/job/8",
			Source:      "mock",
			PostedDate:  "2025-12-15",
		},
		{
			ID:          "mock_9",
			Title:       "Cloud Architect",
			Company:     "Enterprise Solutions",
			Description: "Design and implement cloud infrastructure solutions on AWS and Azure. Lead cloud migration projects and optimize costs.",
			Location:    "Boston, MA",
			Skills:      []string{"AWS", "Azure", "Terraform", "Kubernetes", "Python", "Cloud Architecture"},
			Remote:      true,
			SalaryMin:   salary(140000),
			SalaryMax:   salary(200000),
			URL:         "https://example.com/job/9",
			Source:      "mock",
			PostedDate:  "2025-12-16",
		},
		{
			ID:          "mock_10",
			Title:       "Security Engineer",
			Company:     "CyberSafe Corp",
			Description: "Protect our systems from security threats. Experience with penetration testing, security audits, and compliance required.",
			Location:    "Washington, DC",
			Skills:      []string{"Security", "Python", "Penetration Testing", "Linux", "Network Security"},
			SalaryMin:   salary(115000),
			SalaryMax:   salary(165000),
			URL:         "https://example.com/job/10",
			Source:      "mock",
			PostedDate:  "2025-12-17",
		},
		{
			ID:          "mock_11",
			Title:       "Registered Nurse",
			Company:     "City Hospital",
			Description: "Provide patient care in our emergency department. RN license required with minimum 2 years experience.",
			Location:    "Miami, FL",
			Skills:      []string{"Patient Care", "Emergency Medicine", "Medical Charts", "IV Therapy"},
			SalaryMin:   salary(65000),
			SalaryMax:   salary(85000),
			URL:         "https://example.com/job/11",
			Source:      "mock",
			PostedDate:  "2025-12-11",
		},
		{
			ID:          "mock_12",
			Title:       "Medical Billing Specialist",
			Company:     "HealthCare Services",
			Description: "Process medical claims and insurance billing. Knowledge of ICD-10 coding and medical terminology required.",
			Location:    "Phoenix, AZ",
			Skills:      []string{"Medical Billing", "ICD-10", "Insurance Claims", "Healthcare"},
			Remote:      true,
			SalaryMin:   salary(45000),
			SalaryMax:   salary(60000),
			URL:         "https://example.com/job/12",
			Source:      "mock",
			PostedDate:  "2025-12-12",
		},
		{
			ID:          "mock_13",
			Title:       "Physical Therapist",
			Company:     "Rehabilitation Center",
			Description: "Help patients recover from injuries and improve mobility. PT license and experience with orthopedic cases required.",
			Location:    "Denver, CO",
			Skills:      []string{"Physical Therapy", "Patient Assessment", "Treatment Planning", "Orthopedics"},
			SalaryMin:   salary(70000),
			SalaryMax:   salary(95000),
			URL:         "https://example.com/job/13",
			Source:      "mock",
			PostedDate:  "2025-12-13",
		},
		{
			ID:          "mock_14",
			Title:       "Financial Analyst",
			Company:     "Global Finance Corp",
			Description: "Analyze financial data and create reports. Excel, financial modeling, and SQL skills required.",
			Location:    "New York, NY",
			Skills:      []string{"Financial Analysis", "Excel", "SQL", "Financial Modeling", "PowerBI"},
			SalaryMin:   salary(75000),
			SalaryMax:   salary(110000),
			URL:         "https://example.com/job/14",
			Source:      "mock",
			PostedDate:  "2025-12-14",
		},
		{
			ID:          "mock_15",
			Title:       "Investment Banker",
			Company:     "Wall Street Partners",
			Description: "Advise clients on mergers, acquisitions, and capital raising. MBA and 3+ years experience in investment banking required.",
			Location:    "New York, NY",
			Skills:      []string{"Investment Banking", "Financial Analysis", "M&A", "Valuation"},
			SalaryMin:   salary(150000),
			SalaryMax:   salary(250000),
			URL:         "https://example.com/job/15",
			Source:      "mock",
			PostedDate:  "2025-12-15",
		},
		{
			ID:          "mock_16",
			Title:       "Accountant",
			Company:     "Smith & Associates CPA",
			Description: "Prepare financial statements and tax returns. CPA certification preferred.",
			Location:    "Dallas, TX",
			Skills:      []string{"Accounting", "Tax Preparation", "Financial Statements", "QuickBooks"},
			Remote:      true,
			SalaryMin:   salary(60000),
			SalaryMax:   salary(85000),
			URL:         "https://example.com/job/16",
			Source:      "mock",
			PostedDate:  "2025-12-16",
		},
		{
			ID:          "mock_17",
			Title:       "Digital Marketing Manager",
			Company:     "Marketing Pro Agency",
			Description: "Lead digital marketing campaigns across social media, email, and SEO. Google Analytics and Google Ads experience required.",
			Location:    "Remote",
			Skills:      []string{"Digital Marketing", "SEO", "Google Ads", "Social Media", "Analytics"},
			Remote:      true,
			SalaryMin:   salary(70000),
			SalaryMax:   salary(105000),
			URL:         "https://example.com/job/17",
			Source:      "mock",
			PostedDate:  "2025-12-10",
		},
		{
			ID:          "mock_18",
			Title:       "Content Writer",
			Company:     "Creative Content Co",
			Description: "Create engaging content for blogs, websites, and social media. Strong writing skills and SEO knowledge required.",
			Location:    "Remote",
			Skills:      []string{"Content Writing", "SEO", "Copywriting", "Social Media"},
			Remote:      true,
			SalaryMin:   salary(50000),
			SalaryMax:   salary(70000),
			URL:         "https://example.com/job/18",
			Source:      "mock",
			PostedDate:  "2025-12-11",
		},
		{
			ID:          "mock_19",
			Title:       "Social Media Manager",
			Company:     "Brand Builders",
			Description: "Manage social media accounts and create engaging content. Experience with Instagram, TikTok, and Twitter required.",
			Location:    "Los Angeles, CA",
			Skills:      []string{"Social Media", "Content Creation", "Analytics", "Community Management"},
			Remote:      true,
			SalaryMin:   salary(55000),
			SalaryMax:   salary(80000),
			URL:         "https://example.com/job/19",
			Source:      "mock",
			PostedDate:  "2025-12-12",
		},
		{
			ID:          "mock_20",
			Title:       "Brand Manager",
			Company:     "Consumer Goods Inc",
			Description: "Develop and execute brand strategy. Experience in consumer goods and marketing analytics required.",
			Location:    "Chicago, IL",
			Skills:      []string{"Brand Management", "Marketing Strategy", "Analytics", "Market Research"},
			SalaryMin:   salary(85000),
			SalaryMax:   salary(120000),
			URL:         "https://example.com/job/20",
			Source:      "mock",
			PostedDate:  "2025-12-13",
		},
		{
			ID:          "mock_21",
			Title:       "UX/UI Designer",
			Company:     "Design Studio Pro",
			Description: "Design user-friendly interfaces for web and mobile apps. Figma, Sketch, and user research experience required.",
			Location:    "San Francisco, CA",
			Skills:      []string{"UX Design", "UI Design", "Figma", "Sketch", "User Research", "Prototyping"},
			Remote:      true,
			SalaryMin:   salary(80000),
			SalaryMax:   salary(115000),
			URL:         "https://example.com/job/21",
			Source:      "mock",
			PostedDate:  "2025-12-14",
		},
		{
			ID:          "mock_22",
			Title:       "Graphic Designer",
			Company:     "Creative Agency",
			Description: "Create visual designs for marketing materials, websites, and branding. Adobe Creative Suite proficiency required.",
			Location:    "Portland, OR",
			Skills:      []string{"Graphic Design", "Adobe Photoshop", "Illustrator", "InDesign", "Branding"},
			Remote:      true,
			SalaryMin:   salary(55000),
			SalaryMax:   salary(75000),
			URL:         "https://example.com/job/22",
			Source:      "mock",
			PostedDate:  "2025-12-15",
		},
		{
			ID:          "mock_23",
			Title:       "Product Designer",
			Company:     "SaaS Startup",
			Description: "Design end-to-end product experiences. Experience with design systems and user testing required.",
			Location:    "Remote",
			Skills:      []string{"Product Design", "Figma", "User Testing", "Design Systems", "Prototyping"},
			Remote:      true,
			SalaryMin:   salary(90000),
			SalaryMax:   salary(130000),
			URL:         "https://example.com/job/23",
			Source:      "mock",
			PostedDate:  "2025-12-16",
		},
		{
			ID:          "mock_24",
			Title:       "Sales Representative",
			Company:     "Tech Sales Corp",
			Description: "Sell software solutions to enterprise clients. B2B sales experience and excellent communication skills required.",
			Location:    "Atlanta, GA",
			Skills:      []string{"Sales", "B2B", "CRM", "Communication", "Negotiation"},
			SalaryMin:   salary(60000),
			SalaryMax:   salary(100000),
			URL:         "https://example.com/job/24",
			Source:      "mock",
			PostedDate:  "2025-12-10",
		},
		{
			ID:          "mock_25",
			Title:       "Account Executive",
			Company:     "SaaS Solutions",
			Description: "Manage client relationships and close deals. Experience with Salesforce and SaaS sales required.",
			Location:    "Remote",
			Skills:      []string{"Account Management", "Salesforce", "SaaS", "Sales", "Customer Relations"},
			Remote:      true,
			SalaryMin:   salary(70000),
			SalaryMax:   salary(120000),
			URL:         "https://example.com/job/25",
			Source:      "mock",
			PostedDate:  "2025-12-11",
		},
		{
			ID:          "mock_26",
			Title:       "Business Development Manager",
			Company:     "Growth Partners",
			Description: "Identify new business opportunities and build partnerships. Strong networking and negotiation skills required.",
			Location:    "San Diego, CA",
			Skills:      []string{"Business Development", "Sales", "Networking", "Negotiation", "Strategy"},
			Remote:      true,
			SalaryMin:   salary(85000),
			SalaryMax:   salary(125000),
			URL:         "https://example.com/job/26",
			Source:      "mock",
			PostedDate:  "2025-12-12",
		},
		{
			ID:          "mock_27",
			Title:       "Customer Support Specialist",
			Company:     "HelpDesk Pro",
			Description: "Provide excellent customer support via phone, email, and chat. Experience with Zendesk preferred.",
			Location:    "Remote",
			Skills:      []string{"Customer Support", "Zendesk", "Communication", "Problem Solving"},
			Remote:      true,
			SalaryMin:   salary(40000),
			SalaryMax:   salary(55000),
			URL:         "https://example.com/job/27",
			Source:      "mock",
			PostedDate:  "2025-12-13",
		},
		{
			ID:          "mock_28",
			Title:       "Customer Success Manager",
			Company:     "Enterprise Software Inc",
			Description: "Ensure customer satisfaction and retention. Experience with SaaS and customer onboarding required.",
			Location:    "Remote",
			Skills:      []string{"Customer Success", "SaaS", "Customer Onboarding", "CRM", "Analytics"},
			Remote:      true,
			SalaryMin:   salary(65000),
			SalaryMax:   salary(90000),
			URL:         "https://example.com/job/28",
			Source:      "mock",
			PostedDate:  "2025-12-14",
		},
		{
			ID:          "mock_29",
			Title:       "High School Math Teacher",
			Company:     "City Public Schools",
			Description: "Teach mathematics to high school students. Teaching certification and degree in mathematics required.",
			Location:    "Houston, TX",
			Skills:      []string{"Teaching", "Mathematics", "Classroom Management", "Curriculum Development"},
			SalaryMin:   salary(50000),
			SalaryMax:   salary(70000),
			URL:         "https://example.com/job/29",
			Source:      "mock",
			PostedDate:  "2025-12-15",
		},
		{
			ID:          "mock_30",
			Title:       "Online Tutor",
			Company:     "EduTech Platform",
			Description: "Provide online tutoring in various subjects. Experience with online teaching tools required.",
			Location:    "Remote",
			Skills:      []string{"Tutoring", "Online Teaching", "Communication", "Subject Expertise"},
			Remote:      true,
			SalaryMin:   salary(25000),
			SalaryMax:   salary(45000),
			URL:         "https://example.com/job/30",
			Source:      "mock",
			PostedDate:  "2025-12-16",
		},
		{
			ID:          "mock_31",
			Title:       "Instructional Designer",
			Company:     "Corporate Training Co",
			Description: "Design engaging e-learning courses. Experience with Articulate Storyline and adult learning principles required.",
			Location:    "Remote",
			Skills:      []string{"Instructional Design", "E-Learning", "Articulate Storyline", "Curriculum Design"},
			Remote:      true,
			SalaryMin:   salary(60000),
			SalaryMax:   salary(85000),
			URL:         "https://example.com/job/31",
			Source:      "mock",
			PostedDate:  "2025-12-17",
		},
		{
			ID:          "mock_32",
			Title:       "Mechanical Engineer",
			Company:     "Manufacturing Corp",
			Description: "Design and test mechanical systems. AutoCAD and SolidWorks experience required.",
			Location:    "Detroit, MI",
			Skills:      []string{"Mechanical Engineering", "AutoCAD", "SolidWorks", "CAD", "Manufacturing"},
			SalaryMin:   salary(70000),
			SalaryMax:   salary(95000),
			URL:         "https://example.com/job/32",
			Source:      "mock",
			PostedDate:  "2025-12-10",
		},
		{
			ID:          "mock_33",
			Title:       "Electrical Engineer",
			Company:     "Electronics Inc",
			Description: "Design electrical circuits and systems. Experience with PCB design and embedded systems required.",
			Location:    "San Jose, CA",
			Skills:      []string{"Electrical Engineering", "PCB Design", "Embedded Systems", "Circuit Design"},
			SalaryMin:   salary(80000),
			SalaryMax:   salary(110000),
			URL:         "https://example.com/job/33",
			Source:      "mock",
			PostedDate:  "2025-12-11",
		},
		{
			ID:          "mock_34",
			Title:       "Civil Engineer",
			Company:     "Infrastructure Solutions",
			Description: "Design and oversee construction projects. PE license and experience with AutoCAD Civil 3D required.",
			Location:    "Charlotte, NC",
			Skills:      []string{"Civil Engineering", "AutoCAD Civil 3D", "Project Management", "Construction"},
			SalaryMin:   salary(75000),
			SalaryMax:   salary(105000),
			URL:         "https://example.com/job/34",
			Source:      "mock",
			PostedDate:  "2025-12-12",
		},
		{
			ID:          "mock_35",
			Title:       "Corporate Lawyer",
			Company:     "Law Firm LLP",
			Description: "Advise clients on corporate law matters. JD and bar admission required.",
			Location:    "New York, NY",
			Skills:      []string{"Corporate Law", "Legal Research", "Contract Negotiation", "Compliance"},
			SalaryMin:   salary(120000),
			SalaryMax:   salary(200000),
			URL:         "https://example.com/job/35",
			Source:      "mock",
			PostedDate:  "2025-12-13",
		},
		{
			ID:          "mock_36",
			Title:       "Paralegal",
			Company:     "Legal Services Inc",
			Description: "Assist lawyers with legal research and document preparation. Paralegal certification preferred.",
			Location:    "Philadelphia, PA",
			Skills:      []string{"Legal Research", "Document Preparation", "Case Management", "Legal Writing"},
			Remote:      true,
			SalaryMin:   salary(50000),
			SalaryMax:   salary(70000),
			URL:         "https://example.com/job/36",
			Source:      "mock",
			PostedDate:  "2025-12-14",
		},
		{
			ID:          "mock_37",
			Title:       "HR Manager",
			Company:     "Enterprise Corp",
			Description: "Manage HR operations including recruitment, benefits, and employee relations. SHRM certification preferred.",
			Location:    "Minneapolis, MN",
			Skills:      []string{"Human Resources", "Recruitment", "Employee Relations", "Benefits Administration"},
			SalaryMin:   salary(75000),
			SalaryMax:   salary(105000),
			URL:         "https://example.com/job/37",
			Source:      "mock",
			PostedDate:  "2025-12-15",
		},
		{
			ID:          "mock_38",
			Title:       "Technical Recruiter",
			Company:     "Tech Talent Agency",
			Description: "Recruit software engineers and technical talent. Experience with LinkedIn Recruiter and ATS required.",
			Location:    "Remote",
			Skills:      []string{"Recruiting", "Technical Recruiting", "LinkedIn Recruiter", "ATS", "Sourcing"},
			Remote:      true,
			SalaryMin:   salary(60000),
			SalaryMax:   salary(90000),
			URL:         "https://example.com/job/38",
			Source:      "mock",
			PostedDate:  "2025-12-16",
		},
		{
			ID:          "mock_39",
			Title:       "HR Business Partner",
			Company:     "Global Enterprise",
			Description: "Partner with business leaders on HR strategy and talent management. 5+ years HR experience required.",
			Location:    "Seattle, WA",
			Skills:      []string{"HR Strategy", "Talent Management", "Change Management", "Business Partnership"},
			Remote:      true,
			SalaryMin:   salary(90000),
			SalaryMax:   salary(125000),
			URL:         "https://example.com/job/39",
			Source:      "mock",
			PostedDate:  "2025-12-17",
		},
		{
			ID:          "mock_40",
			Title:       "Data Analyst",
			Company:     "Analytics Corp",
			Description: "Analyze business data and create visualizations. SQL, Python, and Tableau experience required.",
			Location:    "Remote",
			Skills:      []string{"Data Analysis", "SQL", "Python", "Tableau", "Excel", "Statistics"},
			Remote:      true,
			SalaryMin:   salary(70000),
			SalaryMax:   salary(95000),
			URL:         "https://example.com/job/40",
			Source:      "mock",
			PostedDate:  "2025-12-10",
		},
		{
			ID:          "mock_41",
			Title:       "Business Intelligence Analyst",
			Company:     "BI Solutions",
			Description: "Build dashboards and reports for business stakeholders. PowerBI and SQL expertise required.",
			Location:    "Boston, MA",
			Skills:      []string{"Business Intelligence", "PowerBI", "SQL", "Data Visualization", "ETL"},
			Remote:      true,
			SalaryMin:   salary(80000),
			SalaryMax:   salary(110000),
			URL:         "https://example.com/job/41",
			Source:      "mock",
			PostedDate:  "2025-12-11",
		},
		{
			ID:          "mock_42",
			Title:       "Product Manager",
			Company:     "Tech Products Inc",
			Description: "Define product strategy and roadmap. Experience with agile methodologies and user research required.",
			Location:    "San Francisco, CA",
			Skills:      []string{"Product Management", "Agile", "User Research", "Roadmap Planning", "Analytics"},
			Remote:      true,
			SalaryMin:   salary(110000),
			SalaryMax:   salary(160000),
			URL:         "https://example.com/job/42",
			Source:      "mock",
			PostedDate:  "2025-12-12",
		},
		{
			ID:          "mock_43",
			Title:       "Technical Product Manager",
			Company:     "SaaS Platform",
			Description: "Manage technical products and work with engineering teams. Technical background and API knowledge required.",
			Location:    "Remote",
			Skills:      []string{"Product Management", "Technical", "API", "Agile", "SQL"},
			Remote:      true,
			SalaryMin:   salary(120000),
			SalaryMax:   salary(170000),
			URL:         "https://example.com/job/43",
			Source:      "mock",
			PostedDate:  "2025-12-13",
		},
		{
			ID:          "mock_44",
			Title:       "Project Manager",
			Company:     "Consulting Group",
			Description: "Lead cross-functional projects from initiation to completion. PMP certification preferred.",
			Location:    "Washington, DC",
			Skills:      []string{"Project Management", "Agile", "Stakeholder Management", "Risk Management"},
			SalaryMin:   salary(85000),
			SalaryMax:   salary(120000),
			URL:         "https://example.com/job/44",
			Source:      "mock",
			PostedDate:  "2025-12-14",
		},
		{
			ID:          "mock_45",
			Title:       "Scrum Master",
			Company:     "Agile Software Co",
			Description: "Facilitate scrum ceremonies and remove impediments. CSM certification and agile experience required.",
			Location:    "Remote",
			Skills:      []string{"Scrum", "Agile", "Facilitation", "Coaching", "JIRA"},
			Remote:      true,
			SalaryMin:   salary(90000),
			SalaryMax:   salary(125000),
			URL:         "https://example.com/job/45",
			Source:      "mock",
			PostedDate:  "2025-12-15",
		},
		{
			ID:          "mock_46",
			Title:       "Operations Manager",
			Company:     "Logistics Solutions",
			Description: "Manage daily operations and optimize processes. Experience in supply chain and logistics required.",
			Location:    "Memphis, TN",
			Skills:      []string{"Operations Management", "Supply Chain", "Process Improvement", "Logistics"},
			SalaryMin:   salary(70000),
			SalaryMax:   salary(100000),
			URL:         "https://example.com/job/46",
			Source:      "mock",
			PostedDate:  "2025-12-16",
		},
		{
			ID:          "mock_47",
			Title:       "Supply Chain Analyst",
			Company:     "Manufacturing Global",
			Description: "Analyze supply chain data and optimize inventory. Excel and supply chain software experience required.",
			Location:    "Cleveland, OH",
			Skills:      []string{"Supply Chain", "Analytics", "Excel", "Inventory Management", "Forecasting"},
			Remote:      true,
			SalaryMin:   salary(65000),
			SalaryMax:   salary(90000),
			URL:         "https://example.com/job/47",
			Source:      "mock",
			PostedDate:  "2025-12-17",
		},
		{
			ID:          "mock_48",
			Title:       "QA Engineer",
			Company:     "Software Testing Inc",
			Description: "Test software applications and write automated tests. Experience with Selenium and test automation required.",
			Location:    "Remote",
			Skills:      []string{"QA", "Selenium", "Test Automation", "Python", "JIRA", "Agile"},
			Remote:      true,
			SalaryMin:   salary(75000),
			SalaryMax:   salary(105000),
			URL:         "https://example.com/job/48",
			Source:      "mock",
			PostedDate:  "2025-12-10",
		},
		{
			ID:          "mock_49",
			Title:       "Quality Assurance Manager",
			Company:     "Enterprise Software",
			Description: "Lead QA team and establish testing standards. Experience managing QA teams and test strategies required.",
			Location:    "Austin, TX",
			Skills:      []string{"QA Management", "Test Strategy", "Team Leadership", "Automation", "CI/CD"},
			Remote:      true,
			SalaryMin:   salary(95000),
			SalaryMax:   salary(135000),
			URL:         "https://example.com/job/49",
			Source:      "mock",
			PostedDate:  "2025-12-11",
		},
		{
			ID:          "mock_50",
			Title:       "Database Administrator",
			Company:     "Data Systems Corp",
			Description: "Manage and optimize database systems. Experience with PostgreSQL, MySQL, and database performance tuning required.",
			Location:    "Remote",
			Skills:      []string{"Database Administration", "PostgreSQL", "MySQL", "SQL", "Performance Tuning"},
			Remote:      true,
			SalaryMin:   salary(85000),
			SalaryMax:   salary(120000),
			URL:         "https://example.com/job/50",
			Source:      "mock",
			PostedDate:  "2025-12-12",
		},
		{
			ID:          "mock_51",
			Title:       "Site Reliability Engineer",
			Company:     "Cloud Native Inc",
			Description: "Ensure system reliability and performance. Experience with monitoring, incident response, and automation required.",
			Location:    "San Francisco, CA",
			Skills:      []string{"SRE", "Kubernetes", "Monitoring", "Python", "Incident Response", "Automation"},
			Remote:      true,
			SalaryMin:   salary(130000),
			SalaryMax:   salary(180000),
			URL:         "https://example.com/job/51",
			Source:      "mock",
			PostedDate:  "2025-12-13",
		},
	}}
}