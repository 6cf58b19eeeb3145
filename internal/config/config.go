package config

import (
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

// DB holds connection settings for one of the two timecard databases.
type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN renders the go-sql-driver/mysql connection string.
func (d DB) DSN() string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(d.Host, d.Port)
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.DBName = d.Name
	return cfg.FormatDSN()
}

// Config carries both database endpoints for a verification run.
type Config struct {
	Reference DB
	Candidate DB
}

// Load reads configuration from the environment. Every key has a local
// development default, so an empty environment still produces a usable
// config pointing at two local MySQL instances.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	for _, prefix := range []string{"REFERENCE_DB", "CANDIDATE_DB"} {
		v.SetDefault(prefix+"_HOST", "127.0.0.1")
		v.SetDefault(prefix+"_PORT", "3306")
		v.SetDefault(prefix+"_USER", "root")
		v.SetDefault(prefix+"_PASSWORD", "")
		v.SetDefault(prefix+"_NAME", "timecard")
	}

	load := func(prefix string) DB {
		return DB{
			Host:     v.GetString(prefix + "_HOST"),
			Port:     v.GetString(prefix + "_PORT"),
			User:     v.GetString(prefix + "_USER"),
			Password: v.GetString(prefix + "_PASSWORD"),
			Name:     v.GetString(prefix + "_NAME"),
		}
	}
	return Config{
		Reference: load("REFERENCE_DB"),
		Candidate: load("CANDIDATE_DB"),
	}
}
