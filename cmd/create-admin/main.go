package main

import (
	"flag"
	"log"
	"time"

	"github.com/gocql/gocql"

	"lumira_back_end/internal/config"
	"lumira_back_end/internal/database"
	"lumira_back_end/internal/utils"
)

// Outil d'approvisionnement du compte administrateur. Le mot de passe est
// hashé (Argon2id) avant stockage ; relancer l'outil sur un e-mail existant
// remplace son hash.
//
// Usage : create-admin -email admin@lumira.ma -password '...'
func main() {
	email := flag.String("email", "", "adresse e-mail de l'administrateur")
	password := flag.String("password", "", "mot de passe en clair (hashé avant stockage)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("❌ -email et -password sont requis")
	}

	config.Load()
	if err := database.ConnectScylla(); err != nil {
		log.Fatalf("❌ Échec initialisation ScyllaDB: %v", err)
	}
	defer database.CloseScylla()

	session, err := database.GetUsersSession()
	if err != nil {
		log.Fatalf("❌ Erreur connexion keyspace utilisateurs: %v", err)
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("❌ Erreur hash du mot de passe: %v", err)
	}

	var userID gocql.UUID
	err = session.Query(`SELECT user_id FROM users WHERE email = ?`, *email).Scan(&userID)
	if err == nil {
		if err := session.Query(`UPDATE users SET password_hash = ?, role = 'admin' WHERE user_id = ?`, hash, userID).Exec(); err != nil {
			log.Fatalf("❌ Erreur mise à jour administrateur: %v", err)
		}
		log.Println("✅ Mot de passe administrateur mis à jour pour", *email)
		return
	}

	userID = gocql.TimeUUID()
	if err := session.Query(`INSERT INTO users (user_id, email, password_hash, role, created_at) VALUES (?, ?, ?, 'admin', ?)`,
		userID, *email, hash, time.Now()).Exec(); err != nil {
		log.Fatalf("❌ Erreur création administrateur: %v", err)
	}
	log.Println("✅ Compte administrateur créé pour", *email)
}
