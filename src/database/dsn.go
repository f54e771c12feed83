package database

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

// MaskedPassword replaces passwords in printed configuration
const MaskedPassword = "********"

// defaultPorts are used when the config leaves Port at zero
var defaultPorts = map[string]int{
	"pgx":       5432,
	"mysql":     3306,
	"sqlserver": 1433,
}

// BuildDSN builds the connection string for the configured driver.
// An explicit DSN always wins; otherwise it is assembled from the parts.
func (c *Config) BuildDSN() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}

	driver := normalizeDriver(c.Driver)
	port := c.Port
	if port == 0 {
		port = defaultPorts[driver]
	}
	host := c.Host
	if host == "" {
		host = "localhost"
	}

	switch driver {
	case "sqlite":
		name := c.Name
		if name == "" {
			name = "employee_tracker"
		}
		if name == ":memory:" {
			return name, nil
		}
		if filepath.Ext(name) == "" {
			name += ".db"
		}
		if c.DataDir == "" || filepath.IsAbs(name) {
			return name, nil
		}
		return filepath.Join(c.DataDir, name), nil

	case "libsql":
		return "", fmt.Errorf("libsql requires DSN in config (libsql://host?authToken=xxx)")
	}

	if c.Name == "" {
		return "", fmt.Errorf("%s requires a database name (database.name or PG_DATABASE)", c.Driver)
	}

	switch driver {
	case "pgx":
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     net.JoinHostPort(host, strconv.Itoa(port)),
			Path:     "/" + c.Name,
			RawQuery: "sslmode=" + url.QueryEscape(sslMode),
		}
		return u.String(), nil

	case "mysql":
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(host, strconv.Itoa(port))
		mc.DBName = c.Name
		mc.ParseTime = true
		// updates that leave a row unchanged still count as found
		mc.ClientFoundRows = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN(), nil

	case "sqlserver":
		u := url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(c.User, c.Password),
			Host:     net.JoinHostPort(host, strconv.Itoa(port)),
			RawQuery: "database=" + url.QueryEscape(c.Name),
		}
		return u.String(), nil

	default:
		return "", fmt.Errorf("unsupported database driver: %s", c.Driver)
	}
}

// Describe returns a loggable description of the target without credentials
func (c *Config) Describe() string {
	driver := normalizeDriver(c.Driver)
	switch driver {
	case "sqlite":
		dsn, _ := c.BuildDSN()
		return "sqlite " + dsn
	case "libsql":
		if u, err := url.Parse(c.DSN); err == nil && u.Host != "" {
			return "libsql " + u.Host
		}
		return "libsql"
	}
	if c.DSN != "" {
		return driver + " (dsn)"
	}
	port := c.Port
	if port == 0 {
		port = defaultPorts[driver]
	}
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("%s %s/%s", driver, net.JoinHostPort(host, strconv.Itoa(port)), c.Name)
}

// MaskDSN hides the password inside a connection string. URL style DSNs
// (postgres, sqlserver, libsql) and MySQL DSNs are recognized; anything else
// is returned unchanged.
func MaskDSN(dsn string) string {
	if dsn == "" {
		return ""
	}

	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), MaskedPassword)
		}
		q := u.Query()
		for _, key := range []string{"password", "authToken"} {
			if q.Has(key) {
				q.Set(key, MaskedPassword)
			}
		}
		u.RawQuery = q.Encode()
		return u.String()
	}

	if cfg, err := mysql.ParseDSN(dsn); err == nil {
		if cfg.Passwd != "" {
			cfg.Passwd = MaskedPassword
		}
		return cfg.FormatDSN()
	}
	return dsn
}
