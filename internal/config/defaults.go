package config

// Default returns the built-in manifest for the WhatsApp Hindu Agent
// application. Running setupctl without a setup.yaml uses exactly this.
func Default() *Config {
	return &Config{
		Project: "hindu-agent",
		Python: PythonConfig{
			Interpreter: "python3",
			MinVersion:  "3.11",
		},
		Venv: VenvConfig{
			Dir: ".venv",
		},
		Dependencies: []Dependency{
			{Name: "fastapi", Constraint: ">=0.104"},
			{Name: "uvicorn", Constraint: ">=0.24"},
			{Name: "pydantic-settings", Constraint: ">=2.0"},
			{Name: "sqlalchemy", Constraint: ">=2.0"},
			{Name: "psycopg2-binary", Constraint: ">=2.9"},
			{Name: "redis", Constraint: ">=5.0"},
			{Name: "loguru", Constraint: ">=0.7"},
			{Name: "google-generativeai", Constraint: ">=0.8"},
			{Name: "pinecone", Constraint: ">=5.0"},
			{Name: "openai", Constraint: ">=1.0"},
			{Name: "twilio", Constraint: ">=8.0"},
			{Name: "requests", Constraint: ">=2.31"},
			{Name: "pandas", Constraint: ">=2.0"},
		},
		InstallTimeout: "10m",
		Directories: []string{
			"logs",
			"data",
			"config/prompts",
		},
		Secrets: SecretsConfig{
			File:     ".env",
			Template: ".env.example",
			Required: []string{
				"GOOGLE_API_KEY",
				"GOOGLE_PROJECT_ID",
				"OPENAI_API_KEY",
				"PINECONE_API_KEY",
				"SERPER_API_KEY",
			},
		},
		Services: []ServiceConfig{
			{
				Name:  "postgresql",
				Probe: "psql",
				Hints: map[string]string{
					"darwin": "brew install postgresql@16",
					"linux":  "sudo apt-get install postgresql postgresql-contrib",
				},
				Init: &InitAction{
					Prompt:  "Create the hindu_agent database now?",
					Command: []string{"createdb", "hindu_agent"},
				},
			},
			{
				Name:  "redis",
				Probe: "redis-cli",
				Hints: map[string]string{
					"darwin": "brew install redis",
					"linux":  "sudo apt-get install redis-server",
				},
			},
		},
		Downstream: &DownstreamConfig{
			Name:    "database schema",
			Prompt:  "Initialize the database schema now?",
			Command: []string{"python", "-c", "from utils.database import init_db; init_db()"},
		},
		Summary: SummaryConfig{
			NextSteps: []string{
				"Edit .env and fill in your API keys (Google, OpenAI, Pinecone, Serper)",
				"Activate the environment: source .venv/bin/activate",
				"Load the scripture datasets: python scripts/load_data.py",
				"Start the application: uvicorn main:app --reload",
				"See README.md for webhook and WhatsApp sandbox setup",
			},
		},
	}
}
