// Package sqlite implements the agentmem Store on an embedded SQLite catalog.
package sqlite

// Schema DDL. Both statements are create-if-missing so InitSchema never drops
// or alters an existing table.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    email TEXT PRIMARY KEY,
    name TEXT,
    email_count INTEGER DEFAULT 0,
    avg_urgency REAL DEFAULT 0.5,
    common_email_type TEXT,
    common_email_topic TEXT,
    role TEXT
);`

	createEmails = `CREATE TABLE IF NOT EXISTS emails (
    id TEXT PRIMARY KEY,
    sender_email TEXT,
    subject TEXT,
    body TEXT,
    type TEXT,
    urgency REAL,
    sentiment TEXT,
    intent TEXT,
    actions_done TEXT,
    processed BOOLEAN DEFAULT 0,
    FOREIGN KEY (sender_email) REFERENCES users(email)
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUsers,
	createEmails,
}

// clearDML empties the catalog children first.
var clearDML = []string{
	`DELETE FROM emails`,
	`DELETE FROM users`,
}

// Column lists shared by the insert and select statements.
const (
	userColumns  = `email, name, email_count, avg_urgency, common_email_type, common_email_topic, role`
	emailColumns = `id, sender_email, subject, body, type, urgency, sentiment, intent, actions_done, processed`
)
