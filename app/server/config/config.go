package config

type Config struct {
	System struct {
		IsProd                bool   // production mode switch
		Listen                string // listen address
		DBConnectionString    string // Postgres connection string, or a SQLite file path
		RedisConnectionString string // Redis connection string; empty selects the in-process session store
		UploadDir             string // directory that receives uploaded images
	}
}
