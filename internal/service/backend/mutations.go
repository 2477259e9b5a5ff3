package backend

const mutationCreateReservation = `
mutation CreateReservation($firstName: String, $lastName: String!, $phoneNumber: String!, $email: String!, $amount: Int!, $reserveAt: Time!, $notes: String!) {
  createReservation(input: {
    firstName: $firstName
    lastName: $lastName
    phoneNumber: $phoneNumber
    email: $email
    amount: $amount
    reserveAt: $reserveAt
    notes: $notes
  }) {
    token
    reservation {
      id
      firstName
      lastName
      phoneNumber
      email
      amount
      createdAt
      reserveAt
      status
      notes
    }
  }
}
`

const mutationLoginWithReservation = `
  mutation LoginWithReservation($id: ID!, $lastName: String!) {
    loginWithReservation(id: $id, lastName: $lastName) {
      token
      reservation {
        id
        firstName
        lastName
        phoneNumber
        email
        amount
        createdAt
        reserveAt
        status
        notes
      }
    }
  }
`

const mutationLogin = `
  mutation Login($username: String!, $password: String!) {
    login(username: $username, password: $password)
  }
`

const mutationUpdateReservation = `
  mutation UpdateReservation($input: UpdateReservation!) {
    updateReservation(input: $input) {
      id
      firstName
      lastName
      phoneNumber
      email
      amount
      createdAt
      reserveAt
      status
      notes
    }
  }
`

const mutationCancelReservation = `
  mutation CancelReservation($id: ID!) {
    cancelReservation(id: $id) {
      id
      status
    }
  }
`

const mutationConfirmReservation = `
  mutation ConfirmReservation($id: ID!) {
    confirmReservation(id: $id) {
      id
      status
    }
  }
`

const mutationDeclineReservation = `
  mutation DeclineReservation($id: ID!) {
    declineReservation(id: $id) {
      id
      status
    }
  }
`

const mutationSendMessageToReservation = `
  mutation SendMessageToReservation($id: ID!, $content: String!) {
    sendMessageToReservation(id: $id, content: $content)
  }
`

const queryReservationInfoToday = `
  query getReservationInfoToday {
    getReservationInfoToday {
      totalReservation
      totalPerson
      totalOpenReservation
      totalConfirmedReservation
      totalBigReservation
      totalCanceledReservation
      byHours {
        totalReservation
        totalPerson
        totalBigReservation
        startsAt
        endsAt
      }
    }
  }
`
