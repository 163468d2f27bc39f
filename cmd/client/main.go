package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Davidomi/MindMatch/game"
)

type playResponse struct {
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
	NextTurn  string `json:"next_turn"`
	Error     string `json:"error"`
}

func main() {
	server := flag.String("server", "http://localhost:8000", "server base URL")
	room := flag.String("room", "", "room id")
	name := flag.String("name", "", "player name")
	create := flag.Bool("create", false, "create the room instead of joining it")
	flag.Parse()

	if *room == "" || *name == "" {
		fmt.Fprintln(os.Stderr, "usage: client -room <id> -name <player> [-create]")
		os.Exit(1)
	}

	stdin := bufio.NewReader(os.Stdin)

	route := "/join_room"
	if *create {
		route = "/create_room"
	}
	if err := postJSON(*server+route, map[string]string{"room_id": *room, "player": *name}, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	waitForPlayers(*server, *room)

	wsURL := strings.Replace(*server, "http", "ws", 1) + "/ws/" + *room + "/" + *name
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not connect:", err)
		os.Exit(1)
	}
	defer conn.Close()

	secret := askNumber(stdin, "Enter your secret 4-digit number (no repeating digits): ")
	if err := postJSON(*server+"/submit_number",
		map[string]string{"room_id": *room, "player": *name, "number": secret}, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Number sent. Waiting for your turn...")

	for {
		var ev game.Event
		if err := conn.ReadJSON(&ev); err != nil {
			fmt.Fprintln(os.Stderr, "connection lost:", err)
			os.Exit(1)
		}

		switch ev.Type {
		case game.EventGameOver:
			if ev.Winner == *name {
				fmt.Println("You won!")
			} else {
				fmt.Printf("%s guessed your number. You lost.\n", ev.Winner)
			}
			return
		case game.EventTurn:
			if ev.Player != *name {
				fmt.Println(ev.Message)
				continue
			}
			if won := playTurn(stdin, *server, *room, *name); won {
				fmt.Println("You won!")
				return
			}
		}
	}
}

func playTurn(stdin *bufio.Reader, server, room, name string) bool {
	guess := askNumber(stdin, "Your turn. Enter your guess: ")

	var result playResponse
	err := postJSON(server+"/play",
		map[string]string{"room_id": room, "player": name, "number": guess}, &result)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	fmt.Printf("Correct position: %d, wrong position: %d\n", result.Correct, result.Incorrect)
	return result.Correct == 4
}

func askNumber(stdin *bufio.Reader, prompt string) string {
	for {
		fmt.Print(prompt)
		line, err := stdin.ReadString('\n')
		if err != nil {
			os.Exit(1)
		}
		number := strings.TrimSpace(line)
		if game.ValidNumber(number) {
			return number
		}
		fmt.Println("Invalid number. Try again.")
	}
}

func waitForPlayers(server, room string) {
	fmt.Println("Waiting for both players to connect in room", room)
	for {
		resp, err := http.Get(server + "/wait_for_players/" + room)
		if err == nil {
			var body struct {
				ConnectedPlayers int `json:"connected_players"`
			}
			if json.NewDecoder(resp.Body).Decode(&body) == nil && body.ConnectedPlayers == 2 {
				resp.Body.Close()
				fmt.Println("Both players are connected. The game will start.")
				return
			}
			resp.Body.Close()
		}
		time.Sleep(2 * time.Second)
	}
}

func postJSON(url string, payload map[string]string, out any) error {
	body, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("%s: %s", url, e.Error)
		}
		return fmt.Errorf("%s: status %d", url, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
