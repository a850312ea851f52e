package database

// schema is applied in order; MySQL runs one statement per Exec.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id CHAR(36) NOT NULL PRIMARY KEY,
		user_id CHAR(36) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL,
		full_name VARCHAR(255) NULL,
		avatar_url VARCHAR(1024) NULL,
		subscription_tier VARCHAR(20) NULL DEFAULT 'free',
		credits_remaining INT NULL DEFAULT 20,
		uploads_this_month INT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS user_progress (
		id CHAR(36) NOT NULL PRIMARY KEY,
		user_id CHAR(36) NOT NULL UNIQUE,
		study_streak INT NULL DEFAULT 0,
		total_flashcards_reviewed INT NULL DEFAULT 0,
		total_correct_answers INT NULL DEFAULT 0,
		xp_points INT NULL DEFAULT 0,
		last_study_date DATE NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS study_materials (
		id CHAR(36) NOT NULL PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		public_id VARCHAR(32) NOT NULL UNIQUE,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		content MEDIUMTEXT NOT NULL,
		file_type VARCHAR(20) NULL,
		file_url VARCHAR(1024) NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_study_materials_user_created (user_id, created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS flashcards (
		id CHAR(36) NOT NULL PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		study_material_id CHAR(36) NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		difficulty VARCHAR(10) NULL DEFAULT 'medium',
		times_reviewed INT NULL DEFAULT 0,
		times_correct INT NULL DEFAULT 0,
		last_reviewed DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_flashcards_user (user_id),
		CONSTRAINT fk_flashcards_material FOREIGN KEY (study_material_id)
			REFERENCES study_materials(id) ON DELETE SET NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS subscriptions (
		id CHAR(36) NOT NULL PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		stripe_customer_id VARCHAR(255) NULL,
		stripe_subscription_id VARCHAR(255) NULL,
		plan_type VARCHAR(20) NULL,
		status VARCHAR(20) NULL,
		current_period_start DATETIME NULL,
		current_period_end DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_subscriptions_user (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id CHAR(36) NOT NULL PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		message VARCHAR(512) NOT NULL,
		link VARCHAR(512) NULL,
		is_read TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_notifications_user (user_id, is_read, created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}
