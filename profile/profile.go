// Package profile holds the fixed subject profile used as grounding context
// for every generated answer. Loaded once at process start, never mutated.
package profile

// RefusalSentence is the canned one-sentence refusal used whenever a
// question is out of scope.
const RefusalSentence = "I'm only able to answer questions about Chris Barreras."

// SystemInstruction scopes the model to the subject. Refusals are handled by
// the instruction itself; no post-hoc validation of the output is performed.
const SystemInstruction = `
You are "Chris Barreras' AI Assistant". Your job is to answer only questions about Chris:
his work history, skills, projects, achievements, education, certifications, and job-fit.
If the user asks anything not about Chris, politely refuse with one sentence like:
"I'm only able to answer questions about Chris Barreras."

Refusal examples:
Q: What's the weather in New York?
A: I'm only able to answer questions about Chris Barreras.

Q: Explain Kubernetes pod scheduling.
A: I'm only able to answer questions about Chris Barreras.

Q: What are Chris's main front-end strengths?
A: [Answer about Chris based on the provided profile and context.]
`

// Text is the full résumé blob fed to the model with every request.
const Text = `
Summary:
- Name: Chris Barreras

CONTACT

PHONE: 541-610-3148
WEBSITE: chris.barreras.codes
LINKEDIN: www.linkedin.com/in/christopher-barreras
EMAIL: chris@barreras.codes

GITHUB:
github.com/chrisbarreras/studyjarvis
github.com/chrisbarreras/studyjarviswebapp
github.com/chrisbarreras/resume-website

- Degree/Certs: Bachelor's degree in Computer Science from Franciscan University of Steubenville,
Generative AI with Large Language Models by DeepLearning.AI and AWS, BigQuery Soccer Data Ingestion
by Google Cloud, Classify Images of Cats and Dogs using Transfer Learning by Google Cloud, Creating
a Data Warehouse Through Joins and Unions by Google Cloud, Spring Boot with Embedded Database by
Coursera Project Network
- Skills: Angular, TypeScript, Firebase, Node.js, CSS, HTML, Git, CI/CD, testing, JavaScript,
HTML5, CSS3, SCSS, RESTful APIs, Google Cloud Platform, Firestore, SQL databases, NoSQL databases,
responsive design, Progressive Web Apps (PWAs), mobile-first approach, UI/UX, modern user interface
design, user experience optimization, accessibility best practices, VS Code, Angular CLI, npm/yarn,
build tools and automation
- Projects: Resume website (Angular + Firebase), AI assistant for job matching, image optimization,
Interactive Resume Website with dynamic components and PDF viewer integration, Firebase Integration
specialist, Modern Web Applications with latest Angular features, Image Optimization Systems, AI
Integration with Google's Gemini AI API
- Experience: Full-stack web development, scalable maintainable applications, project management,
cloud architecture, serverless computing, modern development workflows including CI/CD, automated
testing, deployment strategies
- Qualities: problem solving, clean code, performance, accessibility, teamwork, innovation minded,
detail oriented, communication skills, passionate about creating intuitive user experiences,
mentoring other developers, writing elegant and maintainable code, active in developer community

Software Developer, Recent Graduate, Former Discerner for the Priesthood, AI Enthusiast

SKILLS

Programming Languages: C++, Java, Python, Angular, TypeScript, JavaScript, HTML, R
Methodologies & Tools: Scrum, Unit Testing, REST, SQL, Postgres, SQLite, Google Cloud, LLMs, Git

EDUCATION

Franciscan University of Steubenville
Bachelor of Science in Computer Science, 2025
Relevant Coursework: Object-Oriented Programming, Software Testing, Software Patterns, Agile
Software Development, Databases, Networking and Telecommunications, Computer Architecture and
Operating Systems, Web Development, Cyber Ethics, Data Science, AI and Machine Learning.

Trinity Lutheran High School
High School Diploma, 2016-2020
Awards: Technology Education and Learning Support (TEALS) Academic Achievement Award for Computer
Programming, President's Award for Educational Excellence, Honor Roll.

CERTIFICATIONS

Generative AI with Large Language Models
Issued by: DeepLearning.AI, Amazon Web Services. Issued: June 2025. Credential ID: KQ6Q7NDRE30F
This course focused on the fundamentals of Generative AI and Large Language Models, including
their architecture, training methods, and practical applications.

BigQuery Soccer Data Ingestion
Issued by: Google Cloud. Issued: May 2025. Credential ID: DFH2DDNTPVH9

Classify Images of Cats and Dogs using Transfer Learning
Issued by: Google Cloud. Issued: May 2025. Credential ID: RJG8S76QXRU9

Creating a Data Warehouse Through Joins and Unions
Issued by: Google Cloud. Issued: May 2025. Credential ID: VEP4UQWT7VZ4

Spring Boot with Embedded Database
Issued by: Coursera Project Network. Issued: May 2025. Credential ID: 3J112PAXW9RS

PROJECTS

AI Reference Checker (2024-2025)
Member of a Scrum team that developed an LLM application for the United States Conference of
Catholic Bishops (USCCB) with a Python server. The application scrapes the USCCB website and uses
the Ollama LLM and a SQLite database to extract and compare quotations from books to the source
material.

StudyJarvis (2022-2025)
Personal project: an AI-powered tutor with a Java backend exposing a REST API. It reads class
notes in PDF and PowerPoint format, stores them in a Google Cloud bucket, and generates study
materials (study guides, quizzes, summaries, Q&A) using Google's Gemini LLM. Angular TypeScript
web UI. Emphasizes Object-Oriented Design Patterns (Singleton, Command, Strategy, Decorator) and
was developed using Test-Driven Development with unit, functional, and integration tests.

WORK EXPERIENCE

Sunset Lodging, Closer, Sunriver, Oregon (2021)
Pronghorn Resort, Landscaper, Bend, Oregon (2020)
College Hunks, Mover, Bend, Oregon (2019)

Personal Interests & Background
Chris grew up in Bend, Oregon. He has four sisters, two older and two younger. In his free time,
he enjoys biking, hiking, playing Dungeons & Dragons, spending time with friends, and playing with
his younger sisters.

Priestly Discernment & Change of Major
Chris spent 2.5 years in the Priestly Discernment Program at Franciscan University of
Steubenville, where he studied Philosophy and Theology while considering a vocation to the
priesthood. After a period of careful reflection and discernment, he decided to change his major
and pursue a Bachelor of Science in Computer Science.

Coursework and Grades

Specialized GPAs
GPA in Computer Science classes: 3.14
GPA in Math and Computer Science: 3.05
GPA in STEM: 3.04

Computer Science Classes (A or B grades)
Introduction to Computer Science (CSC-141): B
Applied Object-Oriented Programming (CSC-171): B+
Object Oriented Programming (CSC-144): A
Networking/Telecommunications (CSC-256): B+
Software Patterns in Object-Oriented Programming (CSC-352): A-
Software Testing (SFE-448): B+
Database & Information Processing Systems (CSC-261): A-
Introduction to Data Science (CSC-315): A
Algorithms and Complexity (CSC-344): A
Senior Capstone Project I (SFE-438): A
Senior Capstone Project II (SFE-439): A-

Math Classes (A or B grades)
Survey of Mathematics (MTH-120): A
Analytic Geometry & Calculus I (MTH-161): B-
Analytic Geometry & Calculus II (MTH-162): B-
Matrix Theory I (MTH-171): A-

Philosophy and Theology Classes (Priestly Discernment Program)
Philosophy of the Human Person (PHL-113), Foundations of Catholicism (THE-101): B+,
Metaphysics (PHL-211), Foundations of Ethics (PHL-212): B-, The Word of God: Scripture &
Tradition (THE-110), Christian Moral Principles (THE-115), Catechist & Missionary
Evangelization (CAT-120): B-, Logic (PHL-301), Epistemology (PHL-306), Principles of Biblical
Study I (THE-211), Trinity and Christology (THE-213), The Sacraments (THE-314).

Other Classes
History of Civilization I (A-), Elementary Spanish I (A), Visual Arts and the Catholic
Imagination (A-), Survey of Earth and Space Science (A-), Intro to Software Engineering (A),
Ethics in Cyberspace (B), Current Topics: Web Programming, Linux & Scripting, Discrete
Mathematics (B-), Programming Languages, CT: Intro to AI/ML Programming.

Summary of College Paper
"The Legal and Ethical Debate Over AI Art" explores the controversies surrounding generative AI
and its impact on human creativity and copyright law. It traces the technological advancements in
generative AI from the transformer architecture (2017) to text-to-image models like DALL-E
(2022), analyzes the US Copyright Act of 1976 and "fair use" as applied to AI training sets, and
cites Getty Images v. Stability AI and Thaler v. Perlmutter. It concludes that software engineers
have an ethical responsibility to develop AI as a tool to assist human creativity, not replace
it.
`
