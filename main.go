package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/domysh/spesometro/config"
	"github.com/domysh/spesometro/database"
	"github.com/domysh/spesometro/logger"
	"github.com/domysh/spesometro/web"
	"github.com/domysh/spesometro/web/global"
	"github.com/domysh/spesometro/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	var server *web.Server

	server = web.NewServer()
	global.SetWebServer(server)
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			global.SetWebServer(server)
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			err := server.Stop()
			if err != nil {
				return
			}
			return
		}
	}
}

func resetSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	err = settingService.ResetSettings()
	if err != nil {
		fmt.Println("reset setting failed:", err)
	} else {
		fmt.Println("reset setting success")
	}
}

func showSetting(show bool) {
	if !show {
		return
	}
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	settingService := service.SettingService{}
	port, err := settingService.GetPort()
	if err != nil {
		fmt.Println("get current port failed, error info:", err)
	}
	userService := service.UserService{}
	users, err := userService.GetUsers()
	if err != nil {
		fmt.Println("get users failed, error info:", err)
		return
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("port:", port)
	for _, user := range users {
		fmt.Printf("user: %s (%s)\n", user.Username, user.Role)
	}
}

func updateSetting(port int, password string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}

	if port > 0 {
		err := settingService.SetPort(port)
		if err != nil {
			fmt.Println("set port failed:", err)
		} else {
			fmt.Printf("set port %v success\n", port)
		}
	}
	if password != "" {
		userService := service.UserService{}
		err := userService.ResetAdminPassword(password)
		if err != nil {
			fmt.Println("set admin password failed:", err)
		} else {
			fmt.Println("set admin password success")
		}
	}
}

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: "spesometro",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var (
		reset    bool
		show     bool
		port     int
		password string
	)
	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Inspect or change panel settings",
		Run: func(cmd *cobra.Command, args []string) {
			if reset {
				resetSetting()
				return
			}
			updateSetting(port, password)
			showSetting(show)
		},
	}
	settingCmd.Flags().BoolVar(&reset, "reset", false, "reset all settings")
	settingCmd.Flags().BoolVar(&show, "show", false, "show current settings")
	settingCmd.Flags().IntVar(&port, "port", 0, "set web port")
	settingCmd.Flags().StringVar(&password, "password", "", "reset the admin password")

	rootCmd.AddCommand(runCmd, settingCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
